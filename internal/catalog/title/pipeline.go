// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package title

import (
	"fmt"
	"strings"

	"github.com/moviebunkers/api/internal/platform/database/schema"
	"github.com/moviebunkers/api/pkg/pagination"
	"github.com/moviebunkers/api/pkg/query"
)

// # Aggregation Pipeline
//
// The pipeline is built from named stages applied in a fixed order. The
// order is load-bearing: match and count run before the owner join so the
// join cost is only paid for rows that survive filtering and pagination.

// Stage names, in canonical order.
const (
	StageMatch          = "match"
	StageLookupUserData = "lookup_userdata"
	StageCount          = "count"
	StageDeriveFlags    = "derive_flags"
	StageSort           = "sort"
	StageSkip           = "skip"
	StageLimit          = "limit"
	StageProject        = "lookup_owners_project"
)

// StageOrder returns the canonical stage sequence. It exists so the order
// is a single reviewable artifact with its own test.
func StageOrder() []string {
	return []string{
		StageMatch,
		StageLookupUserData,
		StageCount,
		StageDeriveFlags,
		StageSort,
		StageSkip,
		StageLimit,
		StageProject,
	}
}

// sortableColumns allow-lists the API sort fields and maps each onto its
// physical column. Well-formed but unknown fields are dropped, matching
// the permissive filter policy; malformed tokens were already rejected by
// the sort parser.
var sortableColumns = map[string]string{
	"createdAt":       schema.CatalogTitle.CreatedAt,
	"updatedAt":       schema.CatalogTitle.UpdatedAt,
	"title":           schema.CatalogTitle.Title,
	"year":            schema.CatalogTitle.Year,
	"runtime":         schema.CatalogTitle.Runtime,
	"releaseDate":     schema.CatalogTitle.ReleaseDate,
	"numberOfSeasons": schema.CatalogTitle.NumberOfSeasons,
	"status":          schema.CatalogTitle.Status,
	"source":          schema.CatalogTitle.Source,
}

// Pipeline aggregates one page of titles for one (possibly anonymous)
// caller: match → join watch-state → count → derive flags → sort → skip →
// limit → join owners and project.
type Pipeline struct {
	Filter Filter

	// UserID is the caller's account id; empty means anonymous, which
	// makes every membership flag false.
	UserID string

	Sort query.SortOrder
	Page pagination.Params
}

// NewPipeline constructs a pipeline for one request.
func NewPipeline(filter Filter, userID string, sort query.SortOrder, page pagination.Params) *Pipeline {
	return &Pipeline{
		Filter: filter,
		UserID: userID,
		Sort:   sort,
		Page:   page,
	}
}

// AppliedSort returns the sort fields that survived the allow-list, in
// request order, falling back to the default when none survive. This is
// what the page envelope echoes back.
func (pipeline *Pipeline) AppliedSort() query.SortOrder {
	var applied query.SortOrder
	for _, sortField := range pipeline.Sort {
		if _, ok := sortableColumns[sortField.Field]; ok {
			applied = append(applied, sortField)
		}
	}
	if len(applied) == 0 {
		applied = query.SortOrder{{Field: query.DefaultSortField, Direction: query.Descending}}
	}
	return applied
}

// stage is one named pipeline step.
type stage struct {
	name  string
	apply func(*pipelineBuilder)
}

// stages returns the steps in canonical order. Must agree with [StageOrder].
func (pipeline *Pipeline) stages() []stage {
	return []stage{
		{StageMatch, pipeline.matchStage},
		{StageLookupUserData, pipeline.lookupUserDataStage},
		{StageCount, pipeline.countStage},
		{StageDeriveFlags, pipeline.deriveFlagsStage},
		{StageSort, pipeline.sortStage},
		{StageSkip, pipeline.skipStage},
		{StageLimit, pipeline.limitStage},
		{StageProject, pipeline.projectStage},
	}
}

// Build assembles the pipeline into one SQL statement with positional args.
func (pipeline *Pipeline) Build() (string, []any) {
	builder := &pipelineBuilder{}

	// $1 is always the caller id (NULL for anonymous).
	builder.args = append(builder.args, nullableUserID(pipeline.UserID))

	for _, pipelineStage := range pipeline.stages() {
		pipelineStage.apply(builder)
	}

	return builder.assemble(), builder.args
}

// pipelineBuilder accumulates the SQL fragments each stage contributes.
type pipelineBuilder struct {
	args []any

	where      []string
	userJoin   string
	countExpr  string
	flagExprs  []string
	orderBy    string
	offsetExpr string
	limitExpr  string
	projection string
	ownerJoins string
}

// placeholder appends an argument and returns its positional marker.
func (builder *pipelineBuilder) placeholder(value any) string {
	builder.args = append(builder.args, value)
	return fmt.Sprintf("$%d", len(builder.args))
}

// ── Stage 1: Match ────────────────────────────────────────────────────────

func (pipeline *Pipeline) matchStage(builder *pipelineBuilder) {
	filter := pipeline.Filter
	t := schema.CatalogTitle

	if filter.Search != "" {
		marker := builder.placeholder("%" + filter.Search + "%")
		builder.where = append(builder.where, fmt.Sprintf(
			"(t.%s ILIKE %s OR t.%s ILIKE %s)", t.Title, marker, t.OriginalTitle, marker))
	}
	if filter.TitleType != "" {
		builder.where = append(builder.where, fmt.Sprintf(
			"t.%s = %s", t.TitleType, builder.placeholder(filter.TitleType)))
	}
	if filter.Source != "" {
		builder.where = append(builder.where, fmt.Sprintf(
			"t.%s = %s", t.Source, builder.placeholder(filter.Source)))
	}
	if filter.Year != 0 {
		builder.where = append(builder.where, fmt.Sprintf(
			"t.%s = %s", t.Year, builder.placeholder(filter.Year)))
	}
	if len(filter.Genres) > 0 {
		builder.where = append(builder.where, fmt.Sprintf(
			"t.%s && %s::text[]", t.Genres, builder.placeholder(filter.Genres)))
	}
	if len(filter.Languages) > 0 {
		builder.where = append(builder.where, fmt.Sprintf(
			"t.%s && %s::text[]", t.Languages, builder.placeholder(filter.Languages)))
	}
}

// ── Stage 2: Lookup UserData ──────────────────────────────────────────────

func (pipeline *Pipeline) lookupUserDataStage(builder *pipelineBuilder) {
	// At most one row joins (userid is unique); NULL caller matches none.
	builder.userJoin = fmt.Sprintf(
		"LEFT JOIN %s ud ON ud.%s = $1::uuid",
		schema.UserData.Table, schema.UserData.UserID)
}

// ── Stage 3: Count ────────────────────────────────────────────────────────

func (pipeline *Pipeline) countStage(builder *pipelineBuilder) {
	// Window count over the post-filter, pre-pagination set rides along on
	// every row, so one round-trip yields page and total together.
	builder.countExpr = "COUNT(*) OVER() AS totalresults"
}

// ── Stage 4: Derive Flags ─────────────────────────────────────────────────

func (pipeline *Pipeline) deriveFlagsStage(builder *pipelineBuilder) {
	ud := schema.UserData
	t := schema.CatalogTitle

	// A missing watch-state row makes the membership test NULL; COALESCE
	// turns that into false, never an error.
	for _, flag := range []struct{ column, alias string }{
		{ud.SeenTitles, "seenbyuser"},
		{ud.UnseenTitles, "unseenbyuser"},
		{ud.StarredTitles, "starredbyuser"},
		{ud.FavouriteTitles, "favouritebyuser"},
	} {
		builder.flagExprs = append(builder.flagExprs, fmt.Sprintf(
			"COALESCE(t.%s = ANY(ud.%s), FALSE) AS %s", t.ID, flag.column, flag.alias))
	}
}

// ── Stage 5: Sort ─────────────────────────────────────────────────────────

func (pipeline *Pipeline) sortStage(builder *pipelineBuilder) {
	var clauses []string
	for _, sortField := range pipeline.AppliedSort() {
		direction := "ASC"
		if sortField.Direction == query.Descending {
			direction = "DESC"
		}
		clauses = append(clauses, fmt.Sprintf("t.%s %s", sortableColumns[sortField.Field], direction))
	}

	// Trailing id keeps pagination stable across equal sort keys.
	clauses = append(clauses, fmt.Sprintf("t.%s DESC", schema.CatalogTitle.ID))
	builder.orderBy = "ORDER BY " + strings.Join(clauses, ", ")
}

// ── Stage 6: Skip ─────────────────────────────────────────────────────────

func (pipeline *Pipeline) skipStage(builder *pipelineBuilder) {
	builder.offsetExpr = "OFFSET " + builder.placeholder(pipeline.Page.Offset())
}

// ── Stage 7: Limit ────────────────────────────────────────────────────────

func (pipeline *Pipeline) limitStage(builder *pipelineBuilder) {
	// limit=0 is the all-rows sentinel: no LIMIT clause at all.
	if pipeline.Page.Unlimited() {
		return
	}
	builder.limitExpr = "LIMIT " + builder.placeholder(pipeline.Page.Limit)
}

// ── Stage 8: Lookup Owners + Project ──────────────────────────────────────

func (pipeline *Pipeline) projectStage(builder *pipelineBuilder) {
	a := schema.UserAccount
	t := schema.CatalogTitle

	// Owner identity is projected through a strict field allow-list:
	// username, email, role, createdat. The password hash never appears in
	// any select this package emits.
	builder.projection = fmt.Sprintf(
		"owner.%s, owner.%s, owner.%s, owner.%s, "+
			"modifier.%s, modifier.%s, modifier.%s, modifier.%s",
		a.UserName, a.Email, a.Role, a.CreatedAt,
		a.UserName, a.Email, a.Role, a.CreatedAt)

	builder.ownerJoins = fmt.Sprintf(
		"LEFT JOIN %s owner ON owner.%s = m.%s\n"+
			"\tLEFT JOIN %s modifier ON modifier.%s = m.%s",
		a.Table, a.ID, t.AddedBy,
		a.Table, a.ID, t.LastModifiedBy)
}

// assemble concatenates the stage fragments into the final statement.
//
// Stages 1-7 live inside the CTE; the owner join and projection sit
// outside so they only touch rows that survived pagination. The outer
// ORDER BY re-applies the sort because a join does not guarantee order
// preservation.
func (builder *pipelineBuilder) assemble() string {
	whereClause := "TRUE"
	if len(builder.where) > 0 {
		whereClause = strings.Join(builder.where, " AND ")
	}

	titleColumns := prefixColumns("t", schema.CatalogTitle.Columns())

	innerSelect := strings.Join(append(
		[]string{titleColumns, builder.countExpr},
		builder.flagExprs...), ",\n\t\t")

	outerOrder := strings.Replace(builder.orderBy, "t.", "m.", -1)

	sql := fmt.Sprintf(`WITH matched AS (
	SELECT
		%s
	FROM %s t
	%s
	WHERE %s
	%s
	%s %s
)
SELECT
	m.*,
	%s
FROM matched m
	%s
%s`,
		innerSelect,
		schema.CatalogTitle.Table,
		builder.userJoin,
		whereClause,
		builder.orderBy,
		builder.offsetExpr, builder.limitExpr,
		builder.projection,
		builder.ownerJoins,
		outerOrder,
	)

	return sql
}

// prefixColumns renders "p.col1, p.col2, ..." for a column list.
func prefixColumns(prefix string, columns []string) string {
	prefixed := make([]string, len(columns))
	for i, column := range columns {
		prefixed[i] = prefix + "." + column
	}
	return strings.Join(prefixed, ", ")
}

// nullableUserID turns the anonymous sentinel (empty string) into SQL NULL.
func nullableUserID(userID string) any {
	if userID == "" {
		return nil
	}
	return userID
}
