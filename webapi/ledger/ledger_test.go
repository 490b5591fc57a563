package ledger_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/agrosphere/backend/pkg/dto"
	"github.com/agrosphere/backend/webapi/common"
	"github.com/agrosphere/backend/webapi/testutils"
)

func TestCreateRecord_Success(t *testing.T) {
	ta := testutils.Setup(t)
	u := testutils.NewUser()
	recID := uuid.New()

	ta.RecordRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	ta.RecordRepo.EXPECT().Get(mock.Anything, mock.Anything).Return(&dto.RecordRead{
		ID:         recID,
		UserID:     u.ID,
		Type:       "expense",
		Category:   "seeds",
		Amount:     1200.50,
		OccurredOn: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Year:       2025,
		Month:      3,
	}, nil).Once()

	resp := ta.Request(t, fiber.MethodPost, "/records",
		`{"type":"expense","category":"seeds","amount":1200.50,"description":"Maize seeds","date":"2025-03-10"}`,
		ta.Token(t, u))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	defer resp.Body.Close() //nolint: errcheck

	var r common.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&r))
	data, ok := r.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "seeds", data["category"])
	assert.EqualValues(t, 2025, data["year"])
}

func TestCreateRecord_RFC3339Date(t *testing.T) {
	ta := testutils.Setup(t)
	u := testutils.NewUser()

	ta.RecordRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	ta.RecordRepo.EXPECT().Get(mock.Anything, mock.Anything).
		Return(&dto.RecordRead{ID: uuid.New(), UserID: u.ID, Type: "earning", Category: "dairy"}, nil).Once()

	resp := ta.Request(t, fiber.MethodPost, "/records",
		`{"type":"earning","category":"dairy","amount":300,"date":"2025-03-10T08:30:00Z"}`,
		ta.Token(t, u))
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestCreateRecord_BadDate(t *testing.T) {
	ta := testutils.Setup(t)
	u := testutils.NewUser()

	resp := ta.Request(t, fiber.MethodPost, "/records",
		`{"type":"expense","category":"seeds","amount":10,"date":"10/03/2025"}`, ta.Token(t, u))
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateRecord_CategoryOutsideVocabulary(t *testing.T) {
	ta := testutils.Setup(t)
	u := testutils.NewUser()

	// "seeds" belongs to expenses; an earning cannot carry it.
	resp := ta.Request(t, fiber.MethodPost, "/records",
		`{"type":"earning","category":"seeds","amount":10,"date":"2025-03-10"}`, ta.Token(t, u))
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateRecord_NonPositiveAmount(t *testing.T) {
	ta := testutils.Setup(t)
	u := testutils.NewUser()

	resp := ta.Request(t, fiber.MethodPost, "/records",
		`{"type":"expense","category":"seeds","amount":0,"date":"2025-03-10"}`, ta.Token(t, u))
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestListRecords_FiltersFromQuery(t *testing.T) {
	ta := testutils.Setup(t)
	u := testutils.NewUser()

	typ := "expense"
	year := 2025
	ta.RecordRepo.EXPECT().
		List(mock.Anything, u.ID, dto.RecordFilter{Type: &typ, Year: &year}, 5, 0).
		Return([]*dto.RecordRead{}, nil).Once()

	resp := ta.Request(t, fiber.MethodGet, "/records?type=expense&year=2025&limit=5", "", ta.Token(t, u))
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestListRecords_InvalidTypeFilter(t *testing.T) {
	ta := testutils.Setup(t)
	u := testutils.NewUser()

	resp := ta.Request(t, fiber.MethodGet, "/records?type=loan", "", ta.Token(t, u))
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDashboard_Success(t *testing.T) {
	ta := testutils.Setup(t)
	u := testutils.NewUser()

	sums := []dto.TypeSum{{Type: "expense", Total: 500}, {Type: "earning", Total: 900}}
	// Current month, trailing seven days and current year windows.
	ta.RecordRepo.EXPECT().SumByTypeSince(mock.Anything, u.ID, mock.Anything, mock.Anything).
		Return(sums, nil).Times(3)
	ta.RecordRepo.EXPECT().MonthlySums(mock.Anything, u.ID, mock.Anything).
		Return([]dto.MonthlySum{{Year: 2025, Month: 8, Type: "expense", Total: 500}}, nil).Once()
	ta.RecordRepo.EXPECT().YearlySums(mock.Anything, u.ID, mock.Anything).
		Return([]dto.YearlySum{{Year: 2025, Type: "earning", Total: 900}}, nil).Once()
	ta.RecordRepo.EXPECT().Recent(mock.Anything, u.ID, 10).
		Return([]*dto.RecordRead{{ID: uuid.New(), Type: "expense", Category: "seeds"}}, nil).Once()
	ta.RecordRepo.EXPECT().Years(mock.Anything, u.ID).
		Return([]int{2025, 2024}, nil).Once()

	resp := ta.Request(t, fiber.MethodGet, "/records/dashboard", "", ta.Token(t, u))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	defer resp.Body.Close() //nolint: errcheck

	var r common.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&r))
	data, ok := r.Data.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, data, "current_month")
	assert.Contains(t, data, "last_7_days")
	assert.Contains(t, data, "monthly_trend")
	assert.Contains(t, data, "yearly_trend")
	assert.Contains(t, data, "current_year")
	assert.Contains(t, data, "recent_records")
	assert.Contains(t, data, "available_years")
}

func TestCategories_Success(t *testing.T) {
	ta := testutils.Setup(t)
	u := testutils.NewUser()

	resp := ta.Request(t, fiber.MethodGet, "/records/categories", "", ta.Token(t, u))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	defer resp.Body.Close() //nolint: errcheck

	var r common.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&r))
	data, ok := r.Data.(map[string]any)
	require.True(t, ok)
	expense, ok := data["expense"].([]any)
	require.True(t, ok)
	assert.Contains(t, expense, "seeds")
	earning, ok := data["earning"].([]any)
	require.True(t, ok)
	assert.Contains(t, earning, "crop_sale")
}
