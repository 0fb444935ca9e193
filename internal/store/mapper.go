package store

import (
	"pharmhub/internal/entity"
	"pharmhub/internal/platform/airtable"
	"pharmhub/internal/usecase"
)

// Field fallback chains, stable field IDs from the production base first,
// display names after so sandbox bases (and fixtures) resolve too. Every
// mapper below is total: any well-formed record maps to an entity using
// literal defaults, never an error.

var (
	resNameKeys     = []string{"fld3kZqXcV9NwB2tR", "Resource Name", "Name", "Title"}
	resProgramKeys  = []string{"fldYp7Jm4QsKdL8vA", "Program", "Program Slug", "Clinical Program"}
	resTypeKeys     = []string{"fldHn5TgWx2PzC6eU", "Resource Type", "Type"}
	resCategoryKeys = []string{"fldHs8RqJm3VbNy5D", "Category", "Subcategory"}
	resTagsKeys     = []string{"fldTq6WzKx4PnM9cB", "Tags", "Medical Conditions"}
	resFileKeys     = []string{"fldFa2VdUc7ZsX3gH", "File", "Attachment", "Document"}
	resUpdatedKeys  = []string{"fldLu9BnHy5TwQ8mE", "Last Updated", "Last Modified"}
	resDownloadKeys = []string{"fldDc4MxGv6RkP7jS", "Download Count", "Downloads"}

	progSlugKeys     = []string{"fldPs5KwJz3XqN8bT", "Slug", "Program Slug"}
	progNameKeys     = []string{"fldPn7RvLm2YcW4dG", "Program Name", "Name", "Title"}
	progDescKeys     = []string{"fldPd8TzQk6VbH3xM", "Description", "Summary"}
	progIconKeys     = []string{"fldPi3GcXw9NsE5rU", "Icon"}
	progCountKeys    = []string{"fldPc6JyFv4MdR7nA", "Resource Count", "Resources"}
	progUpdatedKeys  = []string{"fldPu2HbKs8WqT5zL", "Last Updated", "Last Modified"}
	progDownloadKeys = []string{"fldPw9VmNc3GxJ6eD", "Download Count", "Downloads"}

	annTitleKeys     = []string{"fldAt4QzVb7KpY2sW", "Title", "Headline"}
	annBodyKeys      = []string{"fldAb6NcMw3HqX8dR", "Body", "Message", "Content"}
	annCategoryKeys  = []string{"fldAc9RvJs5TzL4gN", "Category"}
	annPriorityKeys  = []string{"fldAp2XwGd8BnK6cV", "Priority"}
	annPublishedKeys = []string{"fldAe7KmTq4VcZ3yH", "Published At", "Date"}

	qaTitleKeys    = []string{"fldQt5WbPz8JxN3mS", "Title", "Name"}
	qaDescKeys     = []string{"fldQd3HvKc6RqY9tB", "Description"}
	qaIconKeys     = []string{"fldQi8MzXw2GsL5nE", "Icon"}
	qaLinkKeys     = []string{"fldQl4TcVb9NkJ7rA", "Link", "URL"}
	qaCategoryKeys = []string{"fldQc7GwHs3XzM2vD", "Category"}

	memPharmacyKeys  = []string{"fldMp6JzQv4WcK8bN", "Pharmacy Name", "Pharmacy", "Name"}
	memEmailKeys     = []string{"fldMe3RwTs7HxG2dL", "Email", "Email Address"}
	memStatusKeys    = []string{"fldMs9NcVb5KqZ4yT", "Subscription Status", "Status"}
	memLastLoginKeys = []string{"fldMl2XvJw8TzP6gC", "Last Login"}
	memHashKeys      = []string{"fldMh5GcKs3QbY7nV", "Password Hash"}
	memTempPassKeys  = []string{"fldMt8WzRv6JxN4eH", "Temp Password", "Temporary Password"}
)

// mapResource normalizes one record from a resource source table.
// fixedType pins the category for single-purpose tables; the empty value
// reads the type field and buckets anything unknown into Additional
// Resources.
func mapResource(rec airtable.Record, fixedType entity.ResourceType) entity.ResourceItem {
	f := rec.Fields

	typ := fixedType
	if typ == "" {
		typ = entity.ResourceType(f.FirstStr(resTypeKeys...))
		if !typ.Valid() {
			typ = entity.TypeAdditional
		}
	}

	item := entity.ResourceItem{
		ID:            rec.ID,
		Name:          f.StrOr("Resource", resNameKeys...),
		Program:       programSlugOf(f.FirstStr(resProgramKeys...)),
		Type:          typ,
		Category:      f.FirstStr(resCategoryKeys...),
		Tags:          firstStrs(f, resTagsKeys),
		LastUpdated:   f.StrOr(rec.CreatedTime, resUpdatedKeys...),
		DownloadCount: f.IntOr(0, resDownloadKeys...),
	}

	if att, ok := f.FirstAttachment(resFileKeys...); ok {
		item.FileURL = att.URL
		item.SizeMB = att.SizeMB()
	}
	return item
}

func mapProgram(rec airtable.Record) entity.ClinicalProgram {
	f := rec.Fields
	name := f.StrOr("Program", progNameKeys...)
	slug := f.FirstStr(progSlugKeys...)
	if slug == "" {
		slug = entity.SlugifyProgram(name)
	}
	return entity.ClinicalProgram{
		Slug:          slug,
		Name:          name,
		Description:   f.FirstStr(progDescKeys...),
		Icon:          f.FirstStr(progIconKeys...),
		ResourceCount: max(0, f.IntOr(0, progCountKeys...)),
		LastUpdated:   f.StrOr(rec.CreatedTime, progUpdatedKeys...),
		DownloadCount: f.IntOr(0, progDownloadKeys...),
	}
}

func mapAnnouncement(rec airtable.Record) entity.Announcement {
	f := rec.Fields
	return entity.Announcement{
		ID:          rec.ID,
		Title:       f.StrOr("Announcement", annTitleKeys...),
		Body:        f.FirstStr(annBodyKeys...),
		Category:    f.FirstStr(annCategoryKeys...),
		Priority:    f.FirstStr(annPriorityKeys...),
		PublishedAt: f.StrOr(rec.CreatedTime, annPublishedKeys...),
	}
}

func mapQuickAccess(rec airtable.Record) entity.QuickAccessItem {
	f := rec.Fields
	return entity.QuickAccessItem{
		ID:          rec.ID,
		Title:       f.StrOr("Quick Link", qaTitleKeys...),
		Description: f.FirstStr(qaDescKeys...),
		Icon:        f.FirstStr(qaIconKeys...),
		Link:        f.FirstStr(qaLinkKeys...),
		Category:    f.FirstStr(qaCategoryKeys...),
	}
}

func mapMemberCredentials(rec airtable.Record) usecase.MemberCredentials {
	f := rec.Fields
	status := entity.SubscriptionStatus(f.StrOr(string(entity.SubscriptionTrial), memStatusKeys...))
	switch status {
	case entity.SubscriptionActive, entity.SubscriptionExpiring, entity.SubscriptionTrial:
	default:
		status = entity.SubscriptionTrial
	}
	return usecase.MemberCredentials{
		Account: entity.MemberAccount{
			ID:                 rec.ID,
			PharmacyName:       f.StrOr("Member Pharmacy", memPharmacyKeys...),
			Email:              f.FirstStr(memEmailKeys...),
			SubscriptionStatus: status,
			LastLogin:          f.FirstStr(memLastLoginKeys...),
		},
		PasswordHash: f.FirstStr(memHashKeys...),
		TempPassword: f.FirstStr(memTempPassKeys...),
	}
}

// programSlugOf maps a stored program value to its slug; untagged records
// land in the general bucket.
func programSlugOf(value string) string {
	if value == "" {
		return entity.ProgramGeneral
	}
	slug := entity.SlugifyProgram(value)
	for _, known := range entity.ProgramSlugs() {
		if slug == known {
			return known
		}
	}
	return slug
}

func firstStrs(f airtable.Fields, keys []string) []string {
	for _, key := range keys {
		if vals := f.Strs(key); len(vals) > 0 {
			return vals
		}
	}
	return nil
}
