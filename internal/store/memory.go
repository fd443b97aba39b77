package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kofidarko/gyidie-backend/internal/models"
)

// Memory is the in-process fallback store. It offers the same
// operation signatures as the Postgres store, holds state only for the
// lifetime of the process, and ships seeded with example data so the
// platform stays browsable in degraded mode.
type Memory struct {
	mu          sync.RWMutex
	entities    []models.Entity
	reports     []models.Report
	replies     []models.Reply
	evidence    []models.Evidence
	moderations []models.Moderation
	userCount   int64
}

func NewMemory() *Memory {
	m := &Memory{userCount: 3}
	m.seed()
	return m
}

func (m *Memory) seed() {
	mustTime := func(s string) time.Time {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			panic(err)
		}
		return t
	}

	accraMall := models.Entity{
		ID:          uuid.MustParse("0b7f43f1-9a4e-4f3a-8a2e-6a1c7b9d0e01"),
		Name:        "Accra Mall",
		Type:        models.EntityTypeCompany,
		Description: "Premier shopping destination in Accra with various retail stores and restaurants.",
		Location:    "Accra, Greater Accra",
		Verified:    true,
		CreatedAt:   mustTime("2024-01-15T10:00:00Z"),
	}
	mtnGhana := models.Entity{
		ID:          uuid.MustParse("0b7f43f1-9a4e-4f3a-8a2e-6a1c7b9d0e02"),
		Name:        "MTN Ghana",
		Type:        models.EntityTypeCompany,
		Description: "Leading telecommunications company providing mobile and internet services.",
		Location:    "Nationwide",
		Verified:    true,
		CreatedAt:   mustTime("2024-01-10T08:30:00Z"),
	}
	kwameAsante := models.Entity{
		ID:          uuid.MustParse("0b7f43f1-9a4e-4f3a-8a2e-6a1c7b9d0e03"),
		Name:        "Kwame Asante",
		Type:        models.EntityTypeIndividual,
		Description: "Professional electrician providing residential and commercial electrical services.",
		Location:    "Kumasi, Ashanti",
		CreatedAt:   mustTime("2024-02-01T14:20:00Z"),
	}
	shoprite := models.Entity{
		ID:          uuid.MustParse("0b7f43f1-9a4e-4f3a-8a2e-6a1c7b9d0e04"),
		Name:        "Shoprite Ghana",
		Type:        models.EntityTypeCompany,
		Description: "South African retail chain with multiple locations across Ghana.",
		Location:    "Multiple locations",
		Verified:    true,
		CreatedAt:   mustTime("2024-01-20T09:15:00Z"),
	}
	amaSerwaa := models.Entity{
		ID:          uuid.MustParse("0b7f43f1-9a4e-4f3a-8a2e-6a1c7b9d0e05"),
		Name:        "Ama Serwaa",
		Type:        models.EntityTypeIndividual,
		Description: "Experienced seamstress specializing in traditional and modern clothing.",
		Location:    "Tamale, Northern",
		CreatedAt:   mustTime("2024-02-10T16:45:00Z"),
	}
	m.entities = []models.Entity{accraMall, mtnGhana, kwameAsante, shoprite, amaSerwaa}

	demoUser := uuid.MustParse("d3a0c001-0000-4000-8000-000000000001")
	johnUser := uuid.MustParse("d3a0c001-0000-4000-8000-000000000002")

	seedReport := func(id string, entity models.Entity, reporter uuid.UUID, rtype, category, title, description, status, created string, anonymous bool) models.Report {
		return models.Report{
			ID:                  uuid.MustParse(id),
			EntityID:            entity.ID,
			ReporterID:          reporter,
			Type:                rtype,
			Category:            category,
			Title:               title,
			Description:         description,
			OriginalDescription: description,
			Status:              status,
			IsAnonymous:         anonymous,
			CreatedAt:           mustTime(created),
		}
	}

	m.reports = []models.Report{
		seedReport("5e9d0001-0000-4000-8000-000000000001", accraMall, demoUser,
			models.ReportTypePositive, "Excellent Service",
			"Great shopping experience at Accra Mall",
			"Had an amazing time shopping at Accra Mall. The staff were very helpful and the facilities were clean and well-maintained. Parking was easy to find and the security was excellent.",
			models.StatusApproved, "2024-03-01T10:30:00Z", false),
		seedReport("5e9d0001-0000-4000-8000-000000000002", mtnGhana, johnUser,
			models.ReportTypeNegative, "Poor Service",
			"Network issues with MTN",
			"Been experiencing frequent network outages in my area. Customer service was not very helpful when I called to complain. Hope they can improve their service quality.",
			models.StatusApproved, "2024-03-05T14:15:00Z", false),
		seedReport("5e9d0001-0000-4000-8000-000000000003", kwameAsante, demoUser,
			models.ReportTypePositive, "Professional Conduct",
			"Excellent electrical work by Kwame",
			"Kwame did an outstanding job rewiring my house. He was punctual, professional, and his work quality was excellent. Highly recommend his services to anyone needing electrical work.",
			models.StatusApproved, "2024-03-10T09:20:00Z", false),
		seedReport("5e9d0001-0000-4000-8000-000000000004", accraMall, johnUser,
			models.ReportTypeNegative, "Poor Service",
			"Long waiting times at Accra Mall",
			"Had to wait over 30 minutes just to get assistance at one of the stores. The customer service could be much better.",
			models.StatusPending, "2024-03-15T11:45:00Z", false),
		seedReport("5e9d0001-0000-4000-8000-000000000005", mtnGhana, demoUser,
			models.ReportTypePositive, "Excellent Service",
			"Great MTN customer support",
			"Called MTN customer service and they resolved my billing issue quickly and professionally. Very satisfied with the service.",
			models.StatusPending, "2024-03-16T14:20:00Z", true),
	}
}

func (m *Memory) ListEntities(_ context.Context) ([]models.Entity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entities := make([]models.Entity, len(m.entities))
	copy(entities, m.entities)
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].CreatedAt.After(entities[j].CreatedAt)
	})
	return entities, nil
}

func (m *Memory) GetEntity(_ context.Context, id uuid.UUID) (*models.Entity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.entities {
		if m.entities[i].ID == id {
			entity := m.entities[i]
			return &entity, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) CreateEntity(_ context.Context, entity *models.Entity) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if entity.ID == uuid.Nil {
		entity.ID = uuid.New()
	}
	entity.Verified = false
	entity.CreatedAt = time.Now().UTC()
	m.entities = append(m.entities, *entity)
	return nil
}

func (m *Memory) ListReports(_ context.Context, filter ReportFilter) ([]models.Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var reports []models.Report
	for i := range m.reports {
		r := m.reports[i]
		if filter.EntityID != uuid.Nil && r.EntityID != filter.EntityID {
			continue
		}
		if filter.ReporterID != uuid.Nil && r.ReporterID != filter.ReporterID {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		if filter.Type != "" && r.Type != filter.Type {
			continue
		}
		m.attachRelations(&r)
		reports = append(reports, r)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
	return reports, nil
}

func (m *Memory) GetReport(_ context.Context, id uuid.UUID) (*models.Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.reports {
		if m.reports[i].ID == id {
			report := m.reports[i]
			m.attachRelations(&report)
			return &report, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) CreateReport(_ context.Context, report *models.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	report.Status = models.StatusPending
	report.CreatedAt = time.Now().UTC()
	m.reports = append(m.reports, *report)
	return nil
}

func (m *Memory) UpdateReport(_ context.Context, id uuid.UUID, update ReportUpdate) (*models.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.reports {
		if m.reports[i].ID != id {
			continue
		}
		if update.FromStatus != "" && m.reports[i].Status != update.FromStatus {
			return nil, ErrNotFound
		}
		m.reports[i].Status = update.Status
		report := m.reports[i]
		m.attachRelations(&report)
		return &report, nil
	}
	return nil, ErrNotFound
}

func (m *Memory) ApproveAllPending(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var affected int64
	for i := range m.reports {
		if m.reports[i].Status == models.StatusPending {
			m.reports[i].Status = models.StatusApproved
			affected++
		}
	}
	return affected, nil
}

func (m *Memory) CreateReply(_ context.Context, reply *models.Reply) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if reply.ID == uuid.Nil {
		reply.ID = uuid.New()
	}
	reply.Status = models.StatusPending
	reply.CreatedAt = time.Now().UTC()
	m.replies = append(m.replies, *reply)
	return nil
}

func (m *Memory) UpdateReply(_ context.Context, id uuid.UUID, update ReplyUpdate) (*models.Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.replies {
		if m.replies[i].ID == id {
			m.replies[i].Status = update.Status
			reply := m.replies[i]
			return &reply, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) ListReplies(_ context.Context, status string) ([]models.Reply, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var replies []models.Reply
	for i := range m.replies {
		if status != "" && m.replies[i].Status != status {
			continue
		}
		reply := m.replies[i]
		for j := range m.entities {
			if m.entities[j].ID == reply.EntityID {
				entity := m.entities[j]
				reply.Entity = &entity
				break
			}
		}
		replies = append(replies, reply)
	}

	sort.SliceStable(replies, func(i, j int) bool {
		return replies[i].CreatedAt.After(replies[j].CreatedAt)
	})
	return replies, nil
}

func (m *Memory) CreateEvidence(_ context.Context, evidence *models.Evidence) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if evidence.ID == uuid.Nil {
		evidence.ID = uuid.New()
	}
	evidence.CreatedAt = time.Now().UTC()
	m.evidence = append(m.evidence, *evidence)
	return nil
}

func (m *Memory) CountEvidence(_ context.Context, reportID uuid.UUID) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var count int64
	for i := range m.evidence {
		if m.evidence[i].ReportID == reportID {
			count++
		}
	}
	return count, nil
}

func (m *Memory) CreateModeration(_ context.Context, record *models.Moderation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.CreatedAt = time.Now().UTC()
	m.moderations = append(m.moderations, *record)
	return nil
}

func (m *Memory) ReportStats(_ context.Context) (map[uuid.UUID]EntityStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := make(map[uuid.UUID]EntityStats)
	for i := range m.reports {
		r := &m.reports[i]
		if r.Status != models.StatusApproved {
			continue
		}
		s := stats[r.EntityID]
		switch r.Type {
		case models.ReportTypePositive:
			s.Positive++
		case models.ReportTypeNegative:
			s.Negative++
		}
		stats[r.EntityID] = s
	}
	return stats, nil
}

func (m *Memory) AdminStats(_ context.Context) (AdminStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := AdminStats{
		TotalEntities: int64(len(m.entities)),
		TotalUsers:    m.userCount,
	}
	for i := range m.reports {
		stats.TotalReports++
		if m.reports[i].Status == models.StatusPending {
			stats.PendingReports++
		}
	}
	return stats, nil
}

// attachRelations mirrors the preloads the Postgres store performs.
// Caller must hold at least the read lock.
func (m *Memory) attachRelations(report *models.Report) {
	for i := range m.entities {
		if m.entities[i].ID == report.EntityID {
			entity := m.entities[i]
			report.Entity = &entity
			break
		}
	}
	report.Evidence = nil
	for i := range m.evidence {
		if m.evidence[i].ReportID == report.ID {
			report.Evidence = append(report.Evidence, m.evidence[i])
		}
	}
	report.Replies = nil
	for i := range m.replies {
		if m.replies[i].ReportID != report.ID || m.replies[i].Status == models.StatusRejected {
			continue
		}
		reply := m.replies[i]
		for j := range m.entities {
			if m.entities[j].ID == reply.EntityID {
				entity := m.entities[j]
				reply.Entity = &entity
				break
			}
		}
		report.Replies = append(report.Replies, reply)
	}
}
