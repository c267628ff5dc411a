package airtable

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/heartmarshall/fieldforms-backend/internal/domain"
)

// Query narrows a list call.
type Query struct {
	// Filter is a formula expression, see Eq and And.
	Filter string
	// MaxRecords caps the number of records returned; 0 means no cap.
	MaxRecords int
	View       string
	// Fields restricts the returned columns.
	Fields []string
	// Sort orders the records, applied before MaxRecords.
	Sort []Sort
}

// Sort orders a list call by one column.
type Sort struct {
	Field string
	Desc  bool
}

type fieldsBody struct {
	Fields domain.Fields `json:"fields"`
}

type listResponse struct {
	Records []domain.Record `json:"records"`
	Offset  string          `json:"offset"`
}

// Create inserts a record and returns its id. Unset fields are stripped and
// nil fields are sent as null. Network errors and 5xx are only retried when
// the client is configured with RetryCreate.
func (c *Client) Create(ctx context.Context, table string, fields domain.Fields) (string, error) {
	var rec domain.Record
	err := c.do(ctx, call{
		table:          table,
		op:             "create",
		method:         http.MethodPost,
		url:            c.tableURL(table),
		body:           fieldsBody{Fields: fields.Compact()},
		retryTransient: c.retry.RetryCreate,
	}, &rec)
	if err != nil {
		return "", err
	}
	if rec.ID == "" {
		return "", &domain.StoreError{
			Table:   table,
			Op:      "create",
			Message: "no record id returned",
			Err:     domain.ErrStoreUnavailable,
		}
	}

	c.log.InfoContext(ctx, "record created", "table", table, "record_id", rec.ID)
	return rec.ID, nil
}

// List returns the records matching q in the order the store returns them,
// following pagination until MaxRecords is reached or pages run out.
func (c *Client) List(ctx context.Context, table string, q Query) ([]domain.Record, error) {
	var records []domain.Record
	offset := ""

	for {
		params := url.Values{}
		if q.Filter != "" {
			params.Set("filterByFormula", q.Filter)
		}
		if q.MaxRecords > 0 {
			params.Set("maxRecords", strconv.Itoa(q.MaxRecords))
		}
		if q.View != "" {
			params.Set("view", q.View)
		}
		for _, f := range q.Fields {
			params.Add("fields[]", f)
		}
		for i, s := range q.Sort {
			direction := "asc"
			if s.Desc {
				direction = "desc"
			}
			params.Set(fmt.Sprintf("sort[%d][field]", i), s.Field)
			params.Set(fmt.Sprintf("sort[%d][direction]", i), direction)
		}
		if offset != "" {
			params.Set("offset", offset)
		}

		reqURL := c.tableURL(table)
		if enc := params.Encode(); enc != "" {
			reqURL += "?" + enc
		}

		var page listResponse
		err := c.do(ctx, call{
			table:          table,
			op:             "list",
			method:         http.MethodGet,
			url:            reqURL,
			retryTransient: true,
		}, &page)
		if err != nil {
			return nil, err
		}

		records = append(records, page.Records...)
		if q.MaxRecords > 0 && len(records) >= q.MaxRecords {
			return records[:q.MaxRecords], nil
		}
		if page.Offset == "" {
			return records, nil
		}
		offset = page.Offset
	}
}

// FindOne returns the first record matching filter, or domain.ErrNotFound.
func (c *Client) FindOne(ctx context.Context, table, filter string) (domain.Record, error) {
	records, err := c.List(ctx, table, Query{Filter: filter, MaxRecords: 1})
	if err != nil {
		return domain.Record{}, err
	}
	if len(records) == 0 {
		return domain.Record{}, fmt.Errorf("%s %q: %w", table, filter, domain.ErrNotFound)
	}
	return records[0], nil
}

// Get fetches a record by id. A missing record yields domain.ErrNotFound.
// A 404 on any other call means the table, base or field is wrong and is
// reported as domain.ErrStoreRejected.
func (c *Client) Get(ctx context.Context, table, id string) (domain.Record, error) {
	var rec domain.Record
	err := c.do(ctx, call{
		table:          table,
		op:             opGet,
		method:         http.MethodGet,
		url:            c.recordURL(table, id),
		retryTransient: true,
	}, &rec)
	if err != nil {
		return domain.Record{}, err
	}
	return rec, nil
}

// Update patches a record. Columns absent from fields are left untouched.
func (c *Client) Update(ctx context.Context, table, id string, fields domain.Fields) (string, error) {
	var rec domain.Record
	err := c.do(ctx, call{
		table:          table,
		op:             "update",
		method:         http.MethodPatch,
		url:            c.recordURL(table, id),
		body:           fieldsBody{Fields: fields.Compact()},
		retryTransient: true,
	}, &rec)
	if err != nil {
		return "", err
	}
	if rec.ID == "" {
		rec.ID = id
	}

	c.log.InfoContext(ctx, "record updated", "table", table, "record_id", rec.ID, "fields", len(fields))
	return rec.ID, nil
}

// Ping lists at most one record of table to check credentials and reachability.
func (c *Client) Ping(ctx context.Context, table string) (int, error) {
	records, err := c.List(ctx, table, Query{MaxRecords: 1})
	if err != nil {
		return 0, err
	}
	return len(records), nil
}
