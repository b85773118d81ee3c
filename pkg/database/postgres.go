package database

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voidshard/hopper/pkg/structs"
)

const tableJobHistory = "job_history"

// Postgres is a history Database implementation that uses postgres.
type Postgres struct {
	opts *Options
	pool *pgxpool.Pool
}

// NewPostgres returns a new Postgres database connection.
func NewPostgres(opts *Options) (*Postgres, error) {
	if opts == nil {
		opts = &Options{}
	}
	opts.SetDefaults()
	opts.URL = strings.Replace(opts.URL, "$"+opts.UsernameEnvVar, os.Getenv(opts.UsernameEnvVar), 1)
	opts.URL = strings.Replace(opts.URL, "$"+opts.PasswordEnvVar, os.Getenv(opts.PasswordEnvVar), 1)

	if opts.Migrate {
		if err := migrateUp(opts.URL); err != nil {
			return nil, err
		}
	}

	pool, err := pgxpool.New(context.Background(), opts.URL)
	return &Postgres{pool: pool, opts: opts}, err
}

// Close shuts down the database connection.
func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}

// InsertJob records a freshly submitted job.
func (p *Postgres) InsertJob(ctx context.Context, j *structs.Job) error {
	qstr, args := toJobSqlArgs(1, j) // the sql lib starts at 1
	qstr = fmt.Sprintf(`INSERT INTO %s (program_id, job_name, qualifier, member, load_qualifier, id, status, outcome, phase, steps, diagnostics, poll_attempts, etag, submitted_at, last_polled_at, completed_at) VALUES %s;`, tableJobHistory, qstr)

	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, qstr, args...)
	return err
}

// UpdateJob persists the job's tracking state, rotating its etag.
func (p *Postgres) UpdateJob(ctx context.Context, j *structs.Job, newTag string) (int64, error) {
	steps, _ := json.Marshal(j.Steps)
	qstr := fmt.Sprintf(`UPDATE %s SET status=$1, outcome=$2, phase=$3, steps=$4, diagnostics=$5, poll_attempts=$6, last_polled_at=$7, completed_at=$8, etag=$9 WHERE id=$10 AND etag=$11;`, tableJobHistory)
	args := []interface{}{
		j.Status, j.Outcome, j.Phase, steps, j.Diagnostics,
		j.PollAttempts, j.LastPolledAt, j.CompletedAt,
		newTag, j.ID, j.ETag,
	}

	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	info, err := conn.Exec(ctx, qstr, args...)
	if err != nil {
		return 0, err
	}
	return info.RowsAffected(), nil
}

// Jobs returns history rows matching the given query
func (p *Postgres) Jobs(ctx context.Context, q *structs.Query) ([]*structs.Job, error) {
	q.Sanitize()
	where, args := toSqlQuery(map[string][]string{
		"id":      q.JobIDs,
		"status":  statusToStrings(q.Statuses),
		"outcome": outcomeToStrings(q.Outcomes),
	})
	args = append(args, q.Limit, q.Offset)

	qstr := fmt.Sprintf(`SELECT program_id, job_name, qualifier, member, load_qualifier, id, status, outcome, phase, steps, diagnostics, poll_attempts, etag, submitted_at, last_polled_at, completed_at FROM %s %s ORDER BY submitted_at DESC LIMIT $%d OFFSET $%d;`,
		tableJobHistory, where, len(args)-1, len(args),
	)

	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, qstr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []*structs.Job{}
	for rows.Next() {
		j := structs.Job{}
		var steps []byte
		err = rows.Scan(
			&j.ProgramID,
			&j.JobName,
			&j.Qualifier,
			&j.Member,
			&j.LoadQualifier,
			&j.ID,
			&j.Status,
			&j.Outcome,
			&j.Phase,
			&steps,
			&j.Diagnostics,
			&j.PollAttempts,
			&j.ETag,
			&j.SubmittedAt,
			&j.LastPolledAt,
			&j.CompletedAt,
		)
		if err != nil {
			return nil, err
		}
		if len(steps) > 0 {
			if err = json.Unmarshal(steps, &j.Steps); err != nil {
				return nil, err
			}
		}
		jobs = append(jobs, &j)
	}

	return jobs, rows.Err()
}

// toJobSqlArgs renders one placeholder tuple + arg list for a job row,
// starting placeholders at the given offset.
func toJobSqlArgs(offset int, j *structs.Job) (string, []interface{}) {
	steps, _ := json.Marshal(j.Steps)
	args := []interface{}{
		j.ProgramID,
		j.JobName,
		j.Qualifier,
		j.Member,
		j.LoadQualifier,
		j.ID,
		j.Status,
		j.Outcome,
		j.Phase,
		steps,
		j.Diagnostics,
		j.PollAttempts,
		j.ETag,
		j.SubmittedAt,
		j.LastPolledAt,
		j.CompletedAt,
	}

	places := []string{}
	for i := range args {
		places = append(places, fmt.Sprintf("$%d", offset+i))
	}
	return "(" + strings.Join(places, ", ") + ")", args
}

// toSqlQuery builds a WHERE clause from IN-list filters.
// Fields are emitted in sorted order so the output is deterministic.
func toSqlQuery(filters map[string][]string) (string, []interface{}) {
	fields := []string{}
	for f, vals := range filters {
		if len(vals) > 0 {
			fields = append(fields, f)
		}
	}
	if len(fields) == 0 {
		return "", []interface{}{}
	}
	sort.Strings(fields)

	clauses := []string{}
	args := []interface{}{}
	for _, f := range fields {
		places := []string{}
		for _, v := range filters[f] {
			args = append(args, v)
			places = append(places, fmt.Sprintf("$%d", len(args)))
		}
		clauses = append(clauses, fmt.Sprintf("%s IN (%s)", f, strings.Join(places, ", ")))
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

func statusToStrings(in []structs.Status) []string {
	if in == nil || len(in) == 0 {
		return nil
	}
	out := []string{}
	for _, s := range in {
		out = append(out, string(s))
	}
	return out
}

func outcomeToStrings(in []structs.Outcome) []string {
	if in == nil || len(in) == 0 {
		return nil
	}
	out := []string{}
	for _, o := range in {
		out = append(out, string(o))
	}
	return out
}
