// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package artifacts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	// DuckDB driver - reads CSV and Parquet exports in-process
	_ "github.com/duckdb/duckdb-go/v2"
)

// ruleItemSeparator joins items inside the antecedents/consequents columns.
const ruleItemSeparator = "|"

// DuckDBLoader reads artifacts exported as long-format CSV or Parquet tables
// using an in-memory DuckDB connection.
//
//	user_items(user_id, stock_code, quantity)
//	user_similarity(user_id, neighbor_id, score)
//	association_rules(rule_id, antecedents, consequents, support, confidence, lift)
//	product_catalog(stock_code, description, ...)
//	product_translations(source, target)
type DuckDBLoader struct {
	dir string
}

// NewDuckDBLoader creates a loader for dir.
func NewDuckDBLoader(dir string) *DuckDBLoader {
	return &DuckDBLoader{dir: dir}
}

// duckdbTables maps each artifact to its table file stem.
var duckdbTables = map[Name]string{
	Interactions: "user_items",
	Similarity:   "user_similarity",
	Rules:        "association_rules",
	Catalog:      "product_catalog",
	Translations: "product_translations",
}

// Load opens an in-memory DuckDB and scans every table file found in the directory.
func (l *DuckDBLoader) Load(ctx context.Context) (*Bundle, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	defer func() { _ = db.Close() }() //nolint:errcheck // in-memory database

	b := &Bundle{}
	for _, name := range AllNames {
		src, ok, err := l.source(duckdbTables[name])
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if err := l.loadTable(ctx, db, name, src, b); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	return b, nil
}

func (l *DuckDBLoader) loadTable(ctx context.Context, db *sql.DB, name Name, src string, b *Bundle) error {
	var err error
	switch name {
	case Interactions:
		b.Interactions, err = queryInteractions(ctx, db, src)
	case Similarity:
		b.Similarity, err = querySimilarity(ctx, db, src)
	case Rules:
		b.Rules, err = queryRules(ctx, db, src)
	case Catalog:
		b.Catalog, err = queryCatalog(ctx, db, src)
	case Translations:
		b.Translations, err = queryTranslations(ctx, db, src)
	}
	return err
}

// source returns the table function reading stem.parquet, stem.csv, or
// stem.csv.gz, in that order of preference.
func (l *DuckDBLoader) source(stem string) (string, bool, error) {
	for _, ext := range []string{".parquet", ".csv", ".csv.gz"} {
		path := filepath.Join(l.dir, stem+ext)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return "", false, fmt.Errorf("stat %s: %w", path, err)
		}
		if ext == ".parquet" {
			return fmt.Sprintf("read_parquet(%s)", quoteLiteral(path)), true, nil
		}
		return fmt.Sprintf("read_csv_auto(%s, header = true)", quoteLiteral(path)), true, nil
	}
	return "", false, nil
}

// quoteLiteral renders s as a SQL string literal. Table functions take their
// path at bind time, so it cannot be passed as a query parameter.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func queryInteractions(ctx context.Context, db *sql.DB, src string) (*InteractionMatrix, error) {
	query := `SELECT CAST(user_id AS BIGINT), CAST(stock_code AS VARCHAR), SUM(CAST(quantity AS DOUBLE))
		FROM ` + src + `
		GROUP BY 1, 2
		ORDER BY 1, 2`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	defer func() { _ = rows.Close() }() //nolint:errcheck // read-only query

	type triple struct {
		user  int64
		code  string
		value float64
	}
	var (
		triples  []triple
		users    []int64
		products = map[string]struct{}{}
	)
	for rows.Next() {
		var t triple
		if err := rows.Scan(&t.user, &t.code, &t.value); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if len(users) == 0 || users[len(users)-1] != t.user {
			users = append(users, t.user)
		}
		products[t.code] = struct{}{}
		triples = append(triples, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	codes := make([]string, 0, len(products))
	for code := range products {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	col := make(map[string]int, len(codes))
	for i, code := range codes {
		col[code] = i
	}

	cells := make([][]Cell, len(users))
	r := -1
	for i, t := range triples {
		if i == 0 || triples[i-1].user != t.user {
			r++
		}
		if t.value != 0 {
			cells[r] = append(cells[r], Cell{Col: col[t.code], Value: t.value})
		}
	}
	for _, row := range cells {
		sort.Slice(row, func(i, j int) bool { return row[i].Col < row[j].Col })
	}
	return NewInteractionMatrix(users, codes, cells)
}

func querySimilarity(ctx context.Context, db *sql.DB, src string) (*SimilarityModel, error) {
	query := `SELECT CAST(user_id AS BIGINT), CAST(neighbor_id AS BIGINT), CAST(score AS DOUBLE)
		FROM ` + src

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	defer func() { _ = rows.Close() }() //nolint:errcheck // read-only query

	type pair struct {
		user, neighbor int64
		score          float64
	}
	var pairs []pair
	ids := map[int64]struct{}{}
	for rows.Next() {
		var p pair
		if err := rows.Scan(&p.user, &p.neighbor, &p.score); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		ids[p.user] = struct{}{}
		ids[p.neighbor] = struct{}{}
		pairs = append(pairs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	users := make([]int64, 0, len(ids))
	for id := range ids {
		users = append(users, id)
	}
	sort.Slice(users, func(i, j int) bool { return users[i] < users[j] })
	pos := make(map[int64]int, len(users))
	for i, id := range users {
		pos[id] = i
	}

	// Pairs absent from the export score zero.
	scores := make([][]float64, len(users))
	for i := range scores {
		scores[i] = make([]float64, len(users))
	}
	for _, p := range pairs {
		scores[pos[p.user]][pos[p.neighbor]] = p.score
	}
	return NewSimilarityModel(users, scores)
}

func queryRules(ctx context.Context, db *sql.DB, src string) (*RuleTable, error) {
	query := `SELECT CAST(rule_id AS BIGINT), CAST(antecedents AS VARCHAR), CAST(consequents AS VARCHAR),
			CAST(support AS DOUBLE), CAST(confidence AS DOUBLE), CAST(lift AS DOUBLE)
		FROM ` + src + `
		ORDER BY 1`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	defer func() { _ = rows.Close() }() //nolint:errcheck // read-only query

	var rules []Rule
	for rows.Next() {
		var (
			r          Rule
			id         int64
			ante, cons string
		)
		if err := rows.Scan(&id, &ante, &cons, &r.Support, &r.Confidence, &r.Lift); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		r.ID = int(id)
		r.Antecedents = splitItems(ante)
		r.Consequents = splitItems(cons)
		rules = append(rules, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return NewRuleTable(rules)
}

func queryCatalog(ctx context.Context, db *sql.DB, src string) (*ProductCatalog, error) {
	rows, err := db.QueryContext(ctx, "SELECT * FROM "+src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	defer func() { _ = rows.Close() }() //nolint:errcheck // read-only query

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var entries []CatalogEntry
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		fields := make(map[string]string, len(cols))
		for i, c := range cols {
			fields[c] = stringify(values[i])
		}
		e, ok := catalogEntryFromFields(fields)
		if !ok {
			return nil, fmt.Errorf("%w: %s has no stock_code column", ErrMalformed, Catalog)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return NewProductCatalog(entries), nil
}

func queryTranslations(ctx context.Context, db *sql.DB, src string) (TranslationMap, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT CAST(source AS VARCHAR), CAST(target AS VARCHAR) FROM "+src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	defer func() { _ = rows.Close() }() //nolint:errcheck // read-only query

	m := TranslationMap{}
	for rows.Next() {
		var source, target string
		if err := rows.Scan(&source, &target); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		m[source] = target
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return m, nil
}

func splitItems(s string) []string {
	parts := strings.Split(s, ruleItemSeparator)
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}
