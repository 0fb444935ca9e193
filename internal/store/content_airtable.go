package store

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"pharmhub/internal/entity"
	"pharmhub/internal/platform/airtable"
	"pharmhub/internal/usecase"
)

// Table names in the content base.
const (
	tablePrograms      = "Programs"
	tableAnnouncements = "Announcements"
	tableQuickAccess   = "Quick Access"
)

// resourceTable is one source table feeding the unified resource library.
// A fixed type pins every record in that table to one category; the empty
// type reads the category from the record itself.
type resourceTable struct {
	name string
	typ  entity.ResourceType
}

var resourceTables = []resourceTable{
	{name: "Resource Library", typ: ""},
	{name: "Protocols", typ: entity.TypeProtocols},
	{name: "Forms", typ: entity.TypeForms},
	{name: "Training Materials", typ: entity.TypeTraining},
}

// AirtableContent serves portal content straight from the hosted base.
// Nothing is cached; every call re-reads the provider.
type AirtableContent struct {
	client *airtable.Client
	logger *zap.Logger
}

func NewAirtableContent(client *airtable.Client, logger *zap.Logger) *AirtableContent {
	return &AirtableContent{client: client, logger: logger}
}

func (s *AirtableContent) Mode() string { return usecase.ModeAirtable }

func (s *AirtableContent) ListPrograms(ctx context.Context) ([]entity.ClinicalProgram, error) {
	records, err := s.client.ListAll(ctx, tablePrograms, airtable.ListOptions{
		FieldIDKeys: true,
		Sort:        []airtable.SortField{{Field: "Program Name", Direction: "asc"}},
	})
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	programs := make([]entity.ClinicalProgram, 0, len(records))
	for _, rec := range records {
		programs = append(programs, mapProgram(rec))
	}
	return programs, nil
}

// ListResources fans out to every source table concurrently and merges
// the mapped records into one collection before the client-side pipeline
// runs. All-or-nothing: a single failed table fails the aggregate.
func (s *AirtableContent) ListResources(ctx context.Context, f usecase.ResourceFilters) ([]entity.ResourceItem, error) {
	formula := resourceFormula(f)
	perTable := make([][]entity.ResourceItem, len(resourceTables))

	g, gctx := errgroup.WithContext(ctx)
	for i, tbl := range resourceTables {
		g.Go(func() error {
			records, err := s.client.ListAll(gctx, tbl.name, airtable.ListOptions{
				FilterByFormula: formula,
				FieldIDKeys:     true,
			})
			if err != nil {
				return fmt.Errorf("list %s: %w", tbl.name, err)
			}
			mapped := make([]entity.ResourceItem, 0, len(records))
			for _, rec := range records {
				mapped = append(mapped, mapResource(rec, tbl.typ))
			}
			perTable[i] = mapped
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []entity.ResourceItem
	for _, items := range perTable {
		all = append(all, items...)
	}
	return applyResourceFilters(all, f), nil
}

// GetResource probes each source table in order; a miss everywhere is
// ErrNotFound.
func (s *AirtableContent) GetResource(ctx context.Context, id string) (entity.ResourceItem, error) {
	for _, tbl := range resourceTables {
		rec, err := s.client.GetRecord(ctx, tbl.name, id)
		if err == nil {
			return mapResource(rec, tbl.typ), nil
		}
		var apiErr *airtable.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			continue
		}
		return entity.ResourceItem{}, fmt.Errorf("get resource %s: %w", id, err)
	}
	return entity.ResourceItem{}, usecase.ErrNotFound
}

func (s *AirtableContent) ListAnnouncements(ctx context.Context) ([]entity.Announcement, error) {
	records, err := s.client.ListAll(ctx, tableAnnouncements, airtable.ListOptions{
		FieldIDKeys: true,
		Sort:        []airtable.SortField{{Field: "Published At", Direction: "desc"}},
	})
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	out := make([]entity.Announcement, 0, len(records))
	for _, rec := range records {
		out = append(out, mapAnnouncement(rec))
	}
	return out, nil
}

func (s *AirtableContent) ListQuickAccess(ctx context.Context) ([]entity.QuickAccessItem, error) {
	records, err := s.client.ListAll(ctx, tableQuickAccess, airtable.ListOptions{FieldIDKeys: true})
	if err != nil {
		return nil, fmt.Errorf("list quick access: %w", err)
	}
	out := make([]entity.QuickAccessItem, 0, len(records))
	for _, rec := range records {
		out = append(out, mapQuickAccess(rec))
	}
	return out, nil
}

// resourceFormula pushes the provider-expressible filters server-side.
// Type, tag and bookmark filtering stay client-side since the merged set
// spans tables with different layouts.
func resourceFormula(f usecase.ResourceFilters) string {
	var clauses []string

	if len(f.Programs) > 0 {
		programClauses := make([]string, 0, len(f.Programs))
		for _, p := range f.Programs {
			programClauses = append(programClauses, programClause(p))
		}
		clauses = append(clauses, airtable.Or(programClauses...))
	}
	if f.Category != "" {
		clauses = append(clauses, airtable.FieldEqualsFold("Category", f.Category))
	}
	if f.Search != "" {
		clauses = append(clauses, airtable.Search(f.Search, "Resource Name", "Category", "Tags"))
	}

	return airtable.And(clauses...)
}

// programClause matches one program slug. The general bucket also matches
// records with no program tag at all.
func programClause(program string) string {
	if program == entity.ProgramGeneral {
		return airtable.Or("{Program}=''", airtable.FieldEqualsFold("Program", entity.ProgramGeneral))
	}
	return airtable.FieldEqualsFold("Program", program)
}
