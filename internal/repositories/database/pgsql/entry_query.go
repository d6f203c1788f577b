package pgsql

import (
	"strconv"
	"strings"

	"github.com/SscSPs/journal_entries_app/internal/core/domain"
	"github.com/SscSPs/journal_entries_app/internal/utils/pagination"
)

const entryColumns = `e.entry_id, e.company_id, e.entry_number, e.entry_date, e.journal_id, e.description,
		e.reference_number, e.status, e.created_at, e.created_by, e.last_updated_at, e.last_updated_by`

// sortColumnSQL whitelists the columns an entry list can be ordered by.
var sortColumnSQL = map[domain.SortColumn]string{
	domain.SortByEntryDate:       "e.entry_date",
	domain.SortByJournalID:       "e.journal_id",
	domain.SortByDescription:     "e.description",
	domain.SortByReferenceNumber: "e.reference_number",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s literally anywhere in the column.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// entryListQuery holds the SQL text and arguments for one list request.
type entryListQuery struct {
	countSQL  string
	countArgs []any
	pageSQL   string
	pageArgs  []any
}

// buildEntryFilter renders the WHERE clause shared by the count and page queries.
func buildEntryFilter(companyID string, c domain.FilterCriteria) (string, []any) {
	args := []any{companyID}
	conds := []string{"e.company_id = $1"}
	next := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if c.DateFrom != nil {
		conds = append(conds, "e.entry_date >= "+next(*c.DateFrom))
	}
	if c.DateTo != nil {
		conds = append(conds, "e.entry_date <= "+next(*c.DateTo))
	}
	if c.JournalID != nil {
		conds = append(conds, "e.journal_id = "+next(*c.JournalID))
	}
	if c.AccountID != nil {
		conds = append(conds, "EXISTS (SELECT 1 FROM journal_entry_items i WHERE i.entry_id = e.entry_id AND i.account_id = "+next(*c.AccountID)+")")
	}
	if c.Reference != "" {
		conds = append(conds, "e.reference_number ILIKE "+next(containsPattern(c.Reference)))
	}
	if c.Description != "" {
		conds = append(conds, "e.description ILIKE "+next(containsPattern(c.Description)))
	}
	if c.Status != nil {
		conds = append(conds, "e.status = "+next(string(*c.Status)))
	}

	return "WHERE " + strings.Join(conds, " AND "), args
}

// entryOrderBy renders the ORDER BY clause; unknown columns fall back to the default sort.
func entryOrderBy(s domain.SortSpec) string {
	col, ok := sortColumnSQL[s.Column]
	if !ok {
		col = sortColumnSQL[domain.DefaultSortSpec().Column]
	}
	dir := "DESC"
	if s.Direction == domain.SortAsc {
		dir = "ASC"
	}
	return "ORDER BY " + col + " " + dir + ", e.entry_id " + dir
}

func buildEntryListQuery(companyID string, q domain.EntryListQuery) entryListQuery {
	where, args := buildEntryFilter(companyID, q.Criteria)

	limit := q.Limit
	if limit <= 0 {
		limit = pagination.DefaultLimit
	}
	page := q.Page
	if page < 1 {
		page = 1
	}

	pageArgs := append(append([]any{}, args...), limit, pagination.Offset(page, limit))
	pageSQL := "SELECT " + entryColumns + " FROM journal_entries e " + where + " " + entryOrderBy(q.Sort) +
		" LIMIT $" + strconv.Itoa(len(args)+1) + " OFFSET $" + strconv.Itoa(len(args)+2) + ";"

	return entryListQuery{
		countSQL:  "SELECT COUNT(*) FROM journal_entries e " + where + ";",
		countArgs: args,
		pageSQL:   pageSQL,
		pageArgs:  pageArgs,
	}
}
