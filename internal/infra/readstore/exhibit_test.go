//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"museum-booking/internal/domain/schedule"
	"museum-booking/internal/infra"
	"museum-booking/internal/infra/catalogdb"
	"museum-booking/internal/infra/readstore"
	"museum-booking/tests/common/builder"
	readstoremock "museum-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

// =============================================================================
// FindByID Tests
// =============================================================================

func TestExhibitReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	exhibitID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockExhibitReadQueries, uuid.UUID)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: exhibit found with booked slots",
			setupMock: func(mock *readstoremock.MockExhibitReadQueries, id uuid.UUID) {
				row := builder.NewExhibitBuilder().WithID(id).BuildRow()
				slots := []catalogdb.ExhibitBookedSlots{
					{
						ExhibitID: id,
						SlotDate:  pgtype.Date{Time: time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC), Valid: true},
						SlotTime:  pgtype.Text{String: "10:00 AM", Valid: true},
					},
				}
				mock.EXPECT().GetExhibitByID(ctx, gomock.Any(), id).Return(row, nil)
				mock.EXPECT().GetBookedSlotsByExhibitID(ctx, gomock.Any(), id).Return(slots, nil)
			},
			expectedError: false,
		},
		{
			name: "error: exhibit not found",
			setupMock: func(mock *readstoremock.MockExhibitReadQueries, id uuid.UUID) {
				mock.EXPECT().GetExhibitByID(ctx, gomock.Any(), id).Return(catalogdb.Exhibits{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error on exhibit lookup",
			setupMock: func(mock *readstoremock.MockExhibitReadQueries, id uuid.UUID) {
				mock.EXPECT().GetExhibitByID(ctx, gomock.Any(), id).Return(catalogdb.Exhibits{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: database error on booked slots",
			setupMock: func(mock *readstoremock.MockExhibitReadQueries, id uuid.UUID) {
				row := builder.NewExhibitBuilder().WithID(id).BuildRow()
				mock.EXPECT().GetExhibitByID(ctx, gomock.Any(), id).Return(row, nil)
				mock.EXPECT().GetBookedSlotsByExhibitID(ctx, gomock.Any(), id).Return(nil, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: record with non-positive fee fails validation",
			setupMock: func(mock *readstoremock.MockExhibitReadQueries, id uuid.UUID) {
				row := builder.NewExhibitBuilder().WithID(id).WithUnitFeeCents(0).BuildRow()
				mock.EXPECT().GetExhibitByID(ctx, gomock.Any(), id).Return(row, nil)
				mock.EXPECT().GetBookedSlotsByExhibitID(ctx, gomock.Any(), id).Return(nil, nil)
			},
			expectedError: true,
			expectKind:    infra.KindBadData,
		},
		{
			name: "error: record with empty name fails validation",
			setupMock: func(mock *readstoremock.MockExhibitReadQueries, id uuid.UUID) {
				row := builder.NewExhibitBuilder().WithID(id).WithName("   ").BuildRow()
				mock.EXPECT().GetExhibitByID(ctx, gomock.Any(), id).Return(row, nil)
				mock.EXPECT().GetBookedSlotsByExhibitID(ctx, gomock.Any(), id).Return(nil, nil)
			},
			expectedError: true,
			expectKind:    infra.KindBadData,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockExhibitReadQueries(ctrl)
			mockDB := &mockDBTX{}
			store := readstore.NewExhibitReadStore(mockQueries, mockDB)

			tc.setupMock(mockQueries, exhibitID)

			result, actualError := store.FindByID(ctx, exhibitID)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
				assert.Nil(t, result, "result should be nil when error occurs")
			} else {
				assert.NoError(t, actualError)
				require.NotNil(t, result)
				assert.Equal(t, exhibitID, result.ID)
				assert.True(t, result.Reserved.IsReserved(schedule.DateKey{Day: 5, Month: 6, Year: 2024}, "10:00 AM"))
			}
		})
	}
}

func TestExhibitReadStore_FindByID_SkipsMalformedSlots(t *testing.T) {
	ctx := context.Background()
	exhibitID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockExhibitReadQueries(ctrl)
	store := readstore.NewExhibitReadStore(mockQueries, &mockDBTX{})

	row := builder.NewExhibitBuilder().WithID(exhibitID).BuildRow()
	slots := []catalogdb.ExhibitBookedSlots{
		// invalid date
		{ExhibitID: exhibitID, SlotDate: pgtype.Date{}, SlotTime: pgtype.Text{String: "10:00 AM", Valid: true}},
		// empty label
		{ExhibitID: exhibitID, SlotDate: pgtype.Date{Time: time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC), Valid: true}, SlotTime: pgtype.Text{}},
		// well formed
		{ExhibitID: exhibitID, SlotDate: pgtype.Date{Time: time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC), Valid: true}, SlotTime: pgtype.Text{String: "11:30 AM", Valid: true}},
	}
	mockQueries.EXPECT().GetExhibitByID(ctx, gomock.Any(), exhibitID).Return(row, nil)
	mockQueries.EXPECT().GetBookedSlotsByExhibitID(ctx, gomock.Any(), exhibitID).Return(slots, nil)

	result, err := store.FindByID(ctx, exhibitID)

	require.NoError(t, err)
	key := schedule.DateKey{Day: 5, Month: 6, Year: 2024}
	assert.Equal(t, 1, result.Reserved.CountOn(key), "malformed rows must be skipped, not fail the load")
	assert.True(t, result.Reserved.IsReserved(key, "11:30 AM"))
}

// =============================================================================
// FindAll Tests
// =============================================================================

func TestExhibitReadStore_FindAll(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockExhibitReadQueries)
		expectedCount int
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: multiple exhibits",
			setupMock: func(mock *readstoremock.MockExhibitReadQueries) {
				rows := []catalogdb.Exhibits{
					builder.NewExhibitBuilder().BuildRow(),
					builder.NewExhibitBuilder().WithName("Modern Sculpture").BuildRow(),
				}
				mock.EXPECT().GetAllExhibits(ctx, gomock.Any()).Return(rows, nil)
			},
			expectedCount: 2,
		},
		{
			name: "success: empty catalog",
			setupMock: func(mock *readstoremock.MockExhibitReadQueries) {
				mock.EXPECT().GetAllExhibits(ctx, gomock.Any()).Return([]catalogdb.Exhibits{}, nil)
			},
			expectedCount: 0,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockExhibitReadQueries) {
				mock.EXPECT().GetAllExhibits(ctx, gomock.Any()).Return(nil, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: bad record fails the listing",
			setupMock: func(mock *readstoremock.MockExhibitReadQueries) {
				rows := []catalogdb.Exhibits{
					builder.NewExhibitBuilder().BuildRow(),
					builder.NewExhibitBuilder().WithName("Modern Sculpture").WithUnitFeeCents(-100).BuildRow(),
				}
				mock.EXPECT().GetAllExhibits(ctx, gomock.Any()).Return(rows, nil)
			},
			expectedError: true,
			expectKind:    infra.KindBadData,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockExhibitReadQueries(ctrl)
			store := readstore.NewExhibitReadStore(mockQueries, &mockDBTX{})

			tc.setupMock(mockQueries)

			results, actualError := store.FindAll(ctx)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				return
			}
			require.NoError(t, actualError)
			assert.Len(t, results, tc.expectedCount)
		})
	}
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
