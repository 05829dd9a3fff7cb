// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package title_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviebunkers/api/internal/catalog/title"
	"github.com/moviebunkers/api/internal/platform/apperr"
	"github.com/moviebunkers/api/internal/platform/sec"
	"github.com/moviebunkers/api/pkg/pagination"
	"github.com/moviebunkers/api/pkg/pointer"
	"github.com/moviebunkers/api/pkg/query"
)

// fakeRepository is an in-memory stand-in for the titles store.
type fakeRepository struct {
	byID   map[string]*title.Title
	byTmdb map[int64]*title.Title
	byImdb map[string]*title.Title

	created      []*title.Title
	deleted      []string
	lastPipeline *title.Pipeline

	aggregateRows  []*title.TitleSummary
	aggregateTotal int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		byID:   map[string]*title.Title{},
		byTmdb: map[int64]*title.Title{},
		byImdb: map[string]*title.Title{},
	}
}

func (r *fakeRepository) add(t *title.Title) {
	r.byID[t.ID] = t
	if t.TmdbID != nil {
		r.byTmdb[*t.TmdbID] = t
	}
	if t.ImdbID != nil {
		r.byImdb[*t.ImdbID] = t
	}
}

func (r *fakeRepository) Aggregate(_ context.Context, pipeline *title.Pipeline) ([]*title.TitleSummary, int, error) {
	r.lastPipeline = pipeline
	return r.aggregateRows, r.aggregateTotal, nil
}

func (r *fakeRepository) Create(_ context.Context, t *title.Title) error {
	r.add(t)
	r.created = append(r.created, t)
	return nil
}

func (r *fakeRepository) FindByID(_ context.Context, id string) (*title.Title, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, apperr.NotFound("Title")
	}
	return t, nil
}

func (r *fakeRepository) FindByTmdbID(_ context.Context, tmdbID int64) (*title.Title, error) {
	return r.byTmdb[tmdbID], nil
}

func (r *fakeRepository) FindByImdbID(_ context.Context, imdbID string) (*title.Title, error) {
	return r.byImdb[imdbID], nil
}

func (r *fakeRepository) Update(_ context.Context, t *title.Title) error {
	r.add(t)
	return nil
}

func (r *fakeRepository) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	r.deleted = append(r.deleted, id)
	return nil
}

// recordingRemover captures dependent-deletion calls in order.
type recordingRemover struct {
	name  string
	calls *[]string
}

func (d *recordingRemover) DeleteByTitle(_ context.Context, titleID string) error {
	*d.calls = append(*d.calls, d.name+":"+titleID)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func moderator() *sec.Principal {
	return &sec.Principal{UserID: "mod-id", UserName: "mod", Role: sec.RoleModerator}
}

func validInput() *title.Title {
	return &title.Title{
		Title:     "Fight Club",
		TitleType: title.TypeMovie,
		Source:    title.SourceTmdb,
		TmdbID:    pointer.To[int64](550),
		Genres:    []string{"drama", "drama", "thriller"},
	}
}

/*
TestCreateTitle_Success verifies stamping and collection normalization on
the happy path.
*/
func TestCreateTitle_Success(t *testing.T) {
	repo := newFakeRepository()
	service := title.NewService(repo, testLogger())

	created, err := service.CreateTitle(context.Background(), moderator(), validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "mod-id", created.AddedBy)
	assert.Equal(t, "mod-id", created.LastModifiedBy)

	// Deduped, and nil slices replaced with empty ones
	assert.Equal(t, []string{"drama", "thriller"}, created.Genres)
	assert.NotNil(t, created.Languages)
	assert.NotNil(t, created.Networks)
	assert.NotNil(t, created.Directors)

	require.Len(t, repo.created, 1)
}

/*
TestCreateTitle_SourceInvariants verifies the closed enumerations and the
source ⇒ external-id pairing, each failure naming its field.
*/
func TestCreateTitle_SourceInvariants(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*title.Title)
		wantField string
	}{
		{
			name:      "unknown_title_type",
			mutate:    func(in *title.Title) { in.TitleType = "podcast" },
			wantField: "title_type",
		},
		{
			name:      "unknown_source",
			mutate:    func(in *title.Title) { in.Source = "netflix" },
			wantField: "source",
		},
		{
			name:      "tmdb_without_id",
			mutate:    func(in *title.Title) { in.TmdbID = nil },
			wantField: "tmdb_id",
		},
		{
			name: "imdb_without_id",
			mutate: func(in *title.Title) {
				in.Source = title.SourceImdb
				in.ImdbID = nil
			},
			wantField: "imdb_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository()
			service := title.NewService(repo, testLogger())

			input := validInput()
			tt.mutate(input)

			_, err := service.CreateTitle(context.Background(), moderator(), input)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeValidation, ae.Code)
			require.NotEmpty(t, ae.Details)
			assert.Equal(t, tt.wantField, ae.Details[0].Field)
			assert.Empty(t, repo.created)
		})
	}
}

/*
TestCreateTitle_ExternalIDCollision verifies the CONFLICT naming the
colliding external id.
*/
func TestCreateTitle_ExternalIDCollision(t *testing.T) {
	repo := newFakeRepository()
	repo.add(&title.Title{ID: "existing", TmdbID: pointer.To[int64](550)})
	service := title.NewService(repo, testLogger())

	_, err := service.CreateTitle(context.Background(), moderator(), validInput())
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeConflict, ae.Code)
	assert.Equal(t, "A title with tmdb_id 550 already exists", ae.Message)
}

/*
TestUpdateTitle verifies immutable-field preservation and the self
exclusion in the collision probe.
*/
func TestUpdateTitle(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := newFakeRepository()
	repo.add(&title.Title{
		ID:        "title-1",
		Title:     "Fight Club",
		TitleType: title.TypeMovie,
		Source:    title.SourceTmdb,
		TmdbID:    pointer.To[int64](550),
		AddedBy:   "original-author",
		CreatedAt: createdAt,
	})
	service := title.NewService(repo, testLogger())

	// Same external id as the row being updated: not a collision.
	updated, err := service.UpdateTitle(context.Background(), moderator(), "title-1", validInput())
	require.NoError(t, err)

	assert.Equal(t, "title-1", updated.ID)
	assert.Equal(t, "original-author", updated.AddedBy)
	assert.Equal(t, createdAt, updated.CreatedAt)
	assert.Equal(t, "mod-id", updated.LastModifiedBy)
}

/*
TestUpdateTitle_NotFound verifies the miss path.
*/
func TestUpdateTitle_NotFound(t *testing.T) {
	service := title.NewService(newFakeRepository(), testLogger())

	_, err := service.UpdateTitle(context.Background(), moderator(), "missing", validInput())
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeNotFound, ae.Code)
}

/*
TestDeleteTitle verifies that dependents are removed, in order, before the
title row itself.
*/
func TestDeleteTitle(t *testing.T) {
	repo := newFakeRepository()
	repo.add(&title.Title{ID: "title-1"})

	var calls []string
	service := title.NewService(repo, testLogger(),
		&recordingRemover{name: "seasons", calls: &calls},
		&recordingRemover{name: "episodes", calls: &calls},
		&recordingRemover{name: "links", calls: &calls},
	)

	require.NoError(t, service.DeleteTitle(context.Background(), "title-1"))

	assert.Equal(t, []string{"seasons:title-1", "episodes:title-1", "links:title-1"}, calls)
	assert.Equal(t, []string{"title-1"}, repo.deleted)
}

/*
TestDeleteTitle_NotFound verifies that a miss touches no dependents.
*/
func TestDeleteTitle_NotFound(t *testing.T) {
	repo := newFakeRepository()

	var calls []string
	service := title.NewService(repo, testLogger(),
		&recordingRemover{name: "seasons", calls: &calls})

	err := service.DeleteTitle(context.Background(), "missing")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeNotFound, ae.Code)
	assert.Empty(t, calls)
	assert.Empty(t, repo.deleted)
}

/*
TestListTitles verifies the page envelope shaping and the anonymous-caller
pipeline configuration.
*/
func TestListTitles(t *testing.T) {
	repo := newFakeRepository()
	repo.aggregateRows = []*title.TitleSummary{{}, {}}
	repo.aggregateTotal = 45
	service := title.NewService(repo, testLogger())

	page, err := service.ListTitles(
		context.Background(),
		nil, // anonymous
		title.Filter{},
		query.SortOrder{{Field: "popularity", Direction: query.Descending}},
		pagination.Params{Page: 2, Limit: 20},
	)
	require.NoError(t, err)

	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 45, page.TotalResults)
	assert.Len(t, page.List, 2)

	// Unknown sort field dropped, default echoed back
	assert.Equal(t, query.SortOrder{{Field: query.DefaultSortField, Direction: query.Descending}}, page.SortOrder)

	require.NotNil(t, repo.lastPipeline)
	assert.Empty(t, repo.lastPipeline.UserID, "anonymous caller maps to the empty sentinel")
}
