package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/MKhiriev/f4f-study-portal/internal/mock"
	"github.com/MKhiriev/f4f-study-portal/internal/schema"
	"github.com/MKhiriev/f4f-study-portal/internal/store"
	"github.com/MKhiriev/f4f-study-portal/internal/validators"
	"github.com/MKhiriev/f4f-study-portal/models"
)

type toolsMocks struct {
	enums   *mock.MockDocumentRepository[models.InputEnum]
	screens *mock.MockDocumentRepository[models.FoodEnum]
}

func newToolsSvc(t *testing.T, b models.SchemaBundle) (SchemaToolsService, toolsMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := toolsMocks{
		enums:   mock.NewMockDocumentRepository[models.InputEnum](ctrl),
		screens: mock.NewMockDocumentRepository[models.FoodEnum](ctrl),
	}
	storages := &store.Storages{
		EnumRepository:     m.enums,
		FoodEnumRepository: m.screens,
		StudyRepository:    mock.NewMockDocumentRepository[models.Study](ctrl),
	}
	svc := NewSchemaToolsService(storages, bundleLoader(b), validators.NewRequestValidator(), logger.Nop())
	svc.(*schemaToolsService).now = func() time.Time { return toolsNow }
	return svc, m
}

var toolsNow = time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC)

func timePtr(t time.Time) *time.Time { return &t }

func TestSchemaTools_PreviewDefault(t *testing.T) {
	ctx := context.Background()
	listOfText := models.StringType

	tests := []struct {
		name string
		req  models.DefaultValueRequest
		want models.DefaultValueResponse
	}{
		{
			name: "integer truncates",
			req:  models.DefaultValueRequest{Datatype: models.IntType, Value: 7.9},
			want: models.DefaultValueResponse{Value: int64(7), HasDefault: true},
		},
		{
			name: "garbage is discarded",
			req:  models.DefaultValueRequest{Datatype: models.FloatType, Value: "seven"},
			want: models.DefaultValueResponse{},
		},
		{
			name: "momentary date",
			req:  models.DefaultValueRequest{Datatype: models.DateType, Value: "today+3"},
			want: models.DefaultValueResponse{
				Value: "today+3", HasDefault: true,
				ResolvesTo: timePtr(time.Date(2026, 5, 7, 0, 0, 0, 0, time.UTC)),
			},
		},
		{
			name: "momentary time",
			req:  models.DefaultValueRequest{Datatype: models.TimeType, Value: "now-10"},
			want: models.DefaultValueResponse{
				Value: "now-10", HasDefault: true,
				ResolvesTo: timePtr(time.Date(2026, 5, 4, 10, 29, 50, 0, time.UTC)),
			},
		},
		{
			name: "iso date is not resolved",
			req:  models.DefaultValueRequest{Datatype: models.DateType, Value: "2024-05-01"},
			want: models.DefaultValueResponse{Value: "2024-05-01", HasDefault: true},
		},
		{
			name: "list shows placeholder",
			req:  models.DefaultValueRequest{Datatype: models.ListType, ElementsType: &listOfText, Value: "x"},
			want: models.DefaultValueResponse{Placeholder: schema.EmptyListPlaceholder},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newToolsSvc(t, models.SchemaBundle{})

			got, err := svc.PreviewDefault(ctx, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSchemaTools_PreviewDefault_Enum(t *testing.T) {
	ctx := context.Background()
	svc, m := newToolsSvc(t, models.SchemaBundle{})

	m.enums.EXPECT().Get(ctx, enumID).Return(twoItemEnum(enumID, "smoking"), nil).Times(2)

	got, err := svc.PreviewDefault(ctx, models.DefaultValueRequest{Datatype: models.EnumType, AdtEnumID: strPtr(enumID), Value: "no"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultValueResponse{Value: "no", HasDefault: true}, got)

	got, err = svc.PreviewDefault(ctx, models.DefaultValueRequest{Datatype: models.EnumType, AdtEnumID: strPtr(enumID), Value: "maybe"})
	require.NoError(t, err)
	assert.False(t, got.HasDefault)
}

func TestSchemaTools_PreviewDefault_InvalidRequest(t *testing.T) {
	svc, _ := newToolsSvc(t, models.SchemaBundle{})

	_, err := svc.PreviewDefault(context.Background(), models.DefaultValueRequest{Datatype: "Blob"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func foodScreen() models.FoodEnum {
	return models.FoodEnum{
		ID:         screenID,
		Identifier: "drinks",
		Label:      models.NewLocalizedStr("Drinks"),
		ItemIDs:    []string{itemID},
		Transitions: []models.FoodEnumTransition{
			{SelectedItemID: strPtr(itemID), RequireTags: []string{}, AddTags: []string{"coffee"}, TargetEnum: strPtr(otherID)},
			{RequireTags: []string{}, AddTags: []string{}},
		},
	}
}

func TestSchemaTools_EvaluateTransition(t *testing.T) {
	ctx := context.Background()
	svc, m := newToolsSvc(t, models.SchemaBundle{})

	m.screens.EXPECT().Get(ctx, screenID).Return(foodScreen(), nil).Times(2)

	got, err := svc.EvaluateTransition(ctx, models.TransitionRequest{FoodEnumID: screenID, SelectedItemID: itemID, Tags: []string{"morning"}})
	require.NoError(t, err)
	assert.True(t, got.Fired)
	assert.Equal(t, 0, got.TransitionIndex)
	require.NotNil(t, got.TargetEnum)
	assert.Equal(t, otherID, *got.TargetEnum)
	assert.False(t, got.Finished)
	assert.Equal(t, []string{"morning", "coffee"}, got.Tags)

	got, err = svc.EvaluateTransition(ctx, models.TransitionRequest{FoodEnumID: screenID, SelectedItemID: "tea"})
	require.NoError(t, err)
	assert.Equal(t, 1, got.TransitionIndex)
	assert.True(t, got.Finished)
	assert.Nil(t, got.TargetEnum)
}

func TestSchemaTools_EvaluateTransition_NoMatch(t *testing.T) {
	ctx := context.Background()
	svc, m := newToolsSvc(t, models.SchemaBundle{})

	fe := foodScreen()
	fe.Transitions = fe.Transitions[:1]
	m.screens.EXPECT().Get(ctx, screenID).Return(fe, nil)

	got, err := svc.EvaluateTransition(ctx, models.TransitionRequest{FoodEnumID: screenID, SelectedItemID: "tea"})
	require.NoError(t, err)
	assert.False(t, got.Fired)
	assert.Equal(t, -1, got.TransitionIndex)
	assert.Equal(t, []string{}, got.Tags)
}

func TestSchemaTools_EvaluateTransition_Errors(t *testing.T) {
	ctx := context.Background()
	svc, m := newToolsSvc(t, models.SchemaBundle{})

	_, err := svc.EvaluateTransition(ctx, models.TransitionRequest{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	m.screens.EXPECT().Get(ctx, otherID).Return(models.FoodEnum{}, store.ErrNotFound)
	_, err = svc.EvaluateTransition(ctx, models.TransitionRequest{FoodEnumID: otherID})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSchemaTools_FoodGraph_UsesStudyInitialScreen(t *testing.T) {
	fe := foodScreen()
	target := models.FoodEnum{ID: otherID, Identifier: "coffee", Label: models.NewLocalizedStr("Coffee")}
	svc, _ := newToolsSvc(t, models.SchemaBundle{
		Studies:   []models.Study{{ID: studyID, InitialFoodEnum: strPtr(screenID)}},
		FoodEnums: []models.FoodEnum{fe, target},
	})

	report, err := svc.FoodGraph(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, screenID, report.Initial)
	assert.Equal(t, []string{screenID, otherID}, report.Reachable)
	assert.Empty(t, report.Unreachable)
	assert.Equal(t, []string{otherID}, report.DeadEnds)
}

func TestSchemaTools_FoodGraph_SnapshotError(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{
		EnumRepository:     mock.NewMockDocumentRepository[models.InputEnum](ctrl),
		FoodEnumRepository: mock.NewMockDocumentRepository[models.FoodEnum](ctrl),
	}
	svc := NewSchemaToolsService(storages, failingLoader(errDB), validators.NewRequestValidator(), logger.Nop())

	_, err := svc.FoodGraph(context.Background(), screenID)
	assert.ErrorIs(t, err, errDB)
}
