package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodhub/internal/events"
	"foodhub/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testCategory(id int64, title string) *model.Category {
	return &model.Category{ID: id, Title: title, CreatedAt: time.Now()}
}

func TestCategoryService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		svc := NewCategoryService(mockRepo, events.NopPublisher{}, zerolog.Nop())

		categories := []model.Category{*testCategory(1, "Pizza"), *testCategory(2, "Burgers")}
		mockRepo.On("List", ctx).Return(categories, nil)

		got, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, categories, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		svc := NewCategoryService(mockRepo, events.NopPublisher{}, zerolog.Nop())

		mockRepo.On("List", ctx).Return(nil, errors.New("database error"))

		got, err := svc.List(ctx)
		require.Error(t, err)
		assert.Nil(t, got)
		assert.Equal(t, model.KindStorage, model.KindOf(err))
		assert.Contains(t, err.Error(), "Error fetching categories")
	})
}

func TestCategoryService_GetByID(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		mockReturn *model.Category
		mockError  error
		expectKind model.ErrorKind
	}{
		{name: "Success", mockReturn: testCategory(3, "Sushi")},
		{name: "Not found", expectKind: model.KindNotFound},
		{name: "Repository error", mockError: errors.New("database error"), expectKind: model.KindStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockCategoryRepository)
			svc := NewCategoryService(mockRepo, events.NopPublisher{}, zerolog.Nop())

			if tt.mockReturn != nil {
				mockRepo.On("GetByID", ctx, int64(3)).Return(tt.mockReturn, nil)
			} else {
				mockRepo.On("GetByID", ctx, int64(3)).Return(nil, tt.mockError)
			}

			category, err := svc.GetByID(ctx, 3)

			if tt.expectKind != "" {
				require.Error(t, err)
				assert.Nil(t, category)
				assert.Equal(t, tt.expectKind, model.KindOf(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn, category)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCategoryService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		req         *model.CreateCategoryRequest
		expectedNew *model.NewCategory
		errorMsg    string
	}{
		{
			name:        "Title only",
			req:         &model.CreateCategoryRequest{Title: "Pizza"},
			expectedNew: &model.NewCategory{Title: "Pizza"},
		},
		{
			name:        "With icon",
			req:         &model.CreateCategoryRequest{Title: " Sushi ", IconURL: strPtr("http://img/sushi.svg")},
			expectedNew: &model.NewCategory{Title: "Sushi", IconURL: strPtr("http://img/sushi.svg")},
		},
		{
			name:        "Empty icon stored as null",
			req:         &model.CreateCategoryRequest{Title: "Ramen", IconURL: strPtr("")},
			expectedNew: &model.NewCategory{Title: "Ramen"},
		},
		{
			name:     "Missing title",
			req:      &model.CreateCategoryRequest{IconURL: strPtr("http://img/x.svg")},
			errorMsg: "Please provide title",
		},
		{
			name:     "Nil request",
			req:      nil,
			errorMsg: "Please provide title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockCategoryRepository)
			mockPub := new(MockPublisher)
			svc := NewCategoryService(mockRepo, mockPub, zerolog.Nop())

			created := testCategory(11, "created")
			if tt.expectedNew != nil {
				mockRepo.On("Create", ctx, *tt.expectedNew).Return(created, nil)
				mockPub.On("Publish", mock.Anything, eventOfType(events.CategoryCreated, 11)).Return(nil)
			}

			category, err := svc.Create(ctx, tt.req)

			if tt.errorMsg != "" {
				require.Error(t, err)
				assert.Nil(t, category)
				assert.Equal(t, model.KindValidation, model.KindOf(err))
				assert.Contains(t, err.Error(), tt.errorMsg)
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, created, category)
			}

			mockRepo.AssertExpectations(t)
			mockPub.AssertExpectations(t)
		})
	}
}

func TestCategoryService_Create_Duplicate(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCategoryRepository)
	mockPub := new(MockPublisher)
	svc := NewCategoryService(mockRepo, mockPub, zerolog.Nop())

	dupErr := errors.New(`duplicate key value violates unique constraint "categories_title_key"`)
	mockRepo.On("Create", ctx, model.NewCategory{Title: "Pizza"}).Return(nil, dupErr)

	category, err := svc.Create(ctx, &model.CreateCategoryRequest{Title: "Pizza"})

	require.Error(t, err)
	assert.Nil(t, category)
	assert.Equal(t, model.KindStorage, model.KindOf(err))
	assert.ErrorIs(t, err, dupErr)
	assert.Contains(t, err.Error(), "Error adding category")
	mockPub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCategoryService_Update(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		req           *model.UpdateCategoryRequest
		expectedPatch *model.CategoryPatch
		notFound      bool
		unchanged     bool
		errorKind     model.ErrorKind
	}{
		{
			name:          "Icon only",
			req:           &model.UpdateCategoryRequest{IconURL: strPtr("http://img/new.svg")},
			expectedPatch: &model.CategoryPatch{IconURL: strPtr("http://img/new.svg")},
		},
		{
			name:          "Empty title is ignored",
			req:           &model.UpdateCategoryRequest{Title: strPtr(""), IconURL: strPtr("http://img/new.svg")},
			expectedPatch: &model.CategoryPatch{IconURL: strPtr("http://img/new.svg")},
		},
		{
			name:          "No fields returns the stored row",
			req:           &model.UpdateCategoryRequest{},
			expectedPatch: &model.CategoryPatch{},
			unchanged:     true,
		},
		{
			name:          "Nil request returns the stored row",
			req:           nil,
			expectedPatch: &model.CategoryPatch{},
			unchanged:     true,
		},
		{
			name:          "No fields on a missing category",
			req:           &model.UpdateCategoryRequest{},
			expectedPatch: &model.CategoryPatch{},
			notFound:      true,
			errorKind:     model.KindNotFound,
		},
		{
			name:          "Not found",
			req:           &model.UpdateCategoryRequest{Title: strPtr("Wraps")},
			expectedPatch: &model.CategoryPatch{Title: strPtr("Wraps")},
			notFound:      true,
			errorKind:     model.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockCategoryRepository)
			mockPub := new(MockPublisher)
			svc := NewCategoryService(mockRepo, mockPub, zerolog.Nop())

			updated := testCategory(4, "updated")
			if tt.expectedPatch != nil {
				if tt.notFound {
					mockRepo.On("Update", ctx, int64(4), *tt.expectedPatch).Return(nil, nil)
				} else {
					mockRepo.On("Update", ctx, int64(4), *tt.expectedPatch).Return(updated, nil)
					if !tt.unchanged {
						mockPub.On("Publish", mock.Anything, eventOfType(events.CategoryUpdated, 4)).Return(nil)
					}
				}
			}

			category, err := svc.Update(ctx, 4, tt.req)

			if tt.errorKind != "" {
				require.Error(t, err)
				assert.Nil(t, category)
				assert.Equal(t, tt.errorKind, model.KindOf(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, updated, category)
			}
			if tt.unchanged || tt.notFound {
				mockPub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
			}

			mockRepo.AssertExpectations(t)
			mockPub.AssertExpectations(t)
		})
	}
}

func TestCategoryService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		deleted    bool
		mockError  error
		expectKind model.ErrorKind
	}{
		{name: "Success", deleted: true},
		{name: "Not found", expectKind: model.KindNotFound},
		{name: "Repository error", mockError: errors.New("database error"), expectKind: model.KindStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockCategoryRepository)
			mockPub := new(MockPublisher)
			svc := NewCategoryService(mockRepo, mockPub, zerolog.Nop())

			mockRepo.On("Delete", ctx, int64(2)).Return(tt.deleted, tt.mockError)
			if tt.expectKind == "" {
				mockPub.On("Publish", mock.Anything, eventOfType(events.CategoryDeleted, 2)).Return(nil)
			}

			err := svc.Delete(ctx, 2)

			if tt.expectKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectKind, model.KindOf(err))
			} else {
				require.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
			mockPub.AssertExpectations(t)
		})
	}
}
