package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/peto/internal/models"
)

// memoryRecruiters is an in-memory RecruiterStorage for handler tests
type memoryRecruiters struct {
	items  map[string]*models.Recruiter
	nextID int
}

func newMemoryRecruiters() *memoryRecruiters {
	return &memoryRecruiters{items: make(map[string]*models.Recruiter)}
}

func (m *memoryRecruiters) SaveRecruiter(r *models.Recruiter) error {
	if r.ID == "" {
		m.nextID++
		r.ID = fmt.Sprintf("rec_%d", m.nextID)
	}
	if r.Status == "" {
		r.Status = models.RecruiterStatusPending
	}
	copied := *r
	m.items[r.ID] = &copied
	return nil
}

func (m *memoryRecruiters) GetRecruiter(id string) (*models.Recruiter, error) {
	r, ok := m.items[id]
	if !ok {
		return nil, fmt.Errorf("recruiter not found: %s", id)
	}
	copied := *r
	return &copied, nil
}

func (m *memoryRecruiters) ListRecruiters() ([]*models.Recruiter, error) {
	out := make([]*models.Recruiter, 0, len(m.items))
	for _, r := range m.items {
		copied := *r
		out = append(out, &copied)
	}
	return out, nil
}

func (m *memoryRecruiters) DeleteRecruiter(id string) error {
	delete(m.items, id)
	return nil
}

func (m *memoryRecruiters) FindByContact(email, profileURL string) (*models.Recruiter, error) {
	for _, r := range m.items {
		if email != "" && strings.EqualFold(r.Email, email) {
			copied := *r
			return &copied, nil
		}
		if profileURL != "" && strings.EqualFold(r.LinkedInProfileURL, profileURL) {
			copied := *r
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memoryRecruiters) CountRecruiters() (int, error) {
	return len(m.items), nil
}

func newRecruiterTestHandler() (*RecruiterHandler, *memoryRecruiters) {
	store := newMemoryRecruiters()
	return NewRecruiterHandler(store, nil, arbor.NewLogger()), store
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestSaveCandidatesSkipsDuplicatesAndEmpties(t *testing.T) {
	handler, store := newRecruiterTestHandler()

	// Existing recruiter with the same email as one incoming candidate
	require.NoError(t, store.SaveRecruiter(&models.Recruiter{
		RecruiterName: "Jane Doe",
		Email:         "jane.doe@example.com",
	}))

	rec := postJSON(t, handler.SaveCandidatesHandler, "/api/recruiters/import", map[string]interface{}{
		"candidates": []models.ContactCandidate{
			{RecruiterName: "Jane Doe", Email: "JANE.DOE@example.com"}, // duplicate
			{RecruiterName: "John Smith", Email: "john@acme.com"},      // new
			{RecruiterName: "", Email: ""},                             // nothing usable
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Saved      []models.Recruiter `json:"saved"`
		SavedCount int                `json:"savedCount"`
		Skipped    int                `json:"skipped"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 1, resp.SavedCount)
	assert.Equal(t, 2, resp.Skipped)
	require.Len(t, resp.Saved, 1)
	assert.Equal(t, "John Smith", resp.Saved[0].RecruiterName)
	assert.Equal(t, models.RecruiterStatusSaved, resp.Saved[0].Status)
}

func TestUpdateRecruiterStampsLastContactedOnSend(t *testing.T) {
	handler, store := newRecruiterTestHandler()

	recruiter := &models.Recruiter{
		RecruiterName: "Jane Doe",
		Email:         "jane@example.com",
		Status:        models.RecruiterStatusPending,
	}
	require.NoError(t, store.SaveRecruiter(recruiter))

	update := *recruiter
	update.Status = models.RecruiterStatusSent
	data, err := json.Marshal(update)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/recruiters/"+recruiter.ID, bytes.NewReader(data))
	rec := httptest.NewRecorder()
	handler.ItemHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Recruiter
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, models.RecruiterStatusSent, updated.Status)
	require.NotNil(t, updated.LastContacted)
	assert.Equal(t, recruiter.ID, updated.ID)
}

func TestGetUnknownRecruiterReturns404(t *testing.T) {
	handler, _ := newRecruiterTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/recruiters/rec_missing", nil)
	rec := httptest.NewRecorder()
	handler.ItemHandler(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateRecruiterRequiresName(t *testing.T) {
	handler, _ := newRecruiterTestHandler()

	rec := postJSON(t, handler.ListHandler, "/api/recruiters", models.Recruiter{
		Email: "someone@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
