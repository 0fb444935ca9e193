package store

import (
	"context"
	"fmt"
	"strings"

	"pharmhub/internal/platform/airtable"
	"pharmhub/internal/usecase"
)

const tableMembers = "Members"

// AirtableMembers looks up member records for authentication.
type AirtableMembers struct {
	client *airtable.Client
}

func NewAirtableMembers(client *airtable.Client) *AirtableMembers {
	return &AirtableMembers{client: client}
}

// FindByEmail matches the stored email case-insensitively via a
// provider-side formula. Duplicate addresses resolve to the first record
// the provider returns.
func (s *AirtableMembers) FindByEmail(ctx context.Context, email string) (usecase.MemberCredentials, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return usecase.MemberCredentials{}, usecase.ErrNotFound
	}

	records, err := s.client.ListAll(ctx, tableMembers, airtable.ListOptions{
		FilterByFormula: airtable.FieldEqualsFold("Email", email),
		MaxRecords:      1,
		FieldIDKeys:     true,
	})
	if err != nil {
		return usecase.MemberCredentials{}, fmt.Errorf("find member: %w", err)
	}
	if len(records) == 0 {
		return usecase.MemberCredentials{}, usecase.ErrNotFound
	}
	return mapMemberCredentials(records[0]), nil
}
