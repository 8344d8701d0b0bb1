// Package orm is a thin fluent wrapper over the shared gorm connection.
// Every terminal method records query latency in the Prometheus registry.
package orm

import (
	"time"

	"github.com/shashiranjanraj/productos/pkg/cache"
	"github.com/shashiranjanraj/productos/pkg/database"
	"github.com/shashiranjanraj/productos/pkg/metrics"
	"gorm.io/gorm"
)

type Query struct {
	db *gorm.DB
}

func DB() *Query {
	return &Query{db: database.DB}
}

// WithDB builds a Query over an explicit connection. Used by tests.
func WithDB(db *gorm.DB) *Query {
	return &Query{db: db}
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Not(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Not(query, args...)}
}

func (q *Query) Order(value string) *Query {
	return &Query{db: q.db.Order(value)}
}

func (q *Query) Limit(n int) *Query {
	return &Query{db: q.db.Limit(n)}
}

// Get loads all matching rows into dest.
func (q *Query) Get(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.Find(dest).Error
}

// First loads the first matching row; gorm.ErrRecordNotFound when none.
func (q *Query) First(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.First(dest).Error
}

// Count returns the number of matching rows.
func (q *Query) Count() (int64, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var n int64
	err := q.db.Count(&n).Error
	return n, err
}

// Exists reports whether at least one matching row exists.
func (q *Query) Exists() (bool, error) {
	n, err := q.Limit(1).Count()
	return n > 0, err
}

// Create inserts value.
func (q *Query) Create(value interface{}) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return q.db.Create(value).Error
}

// Save upserts value, writing all fields.
func (q *Query) Save(value interface{}) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return q.db.Save(value).Error
}

// Delete removes matching rows and returns how many were affected.
func (q *Query) Delete(value interface{}, conds ...interface{}) (int64, error) {
	defer metrics.ObserveDBQuery("delete", time.Now())

	res := q.db.Delete(value, conds...)
	return res.RowsAffected, res.Error
}

// Cache answers from Redis when the key is warm, otherwise loads from the
// database and stores the result for ttl.
func (q *Query) Cache(key string, ttl time.Duration, dest interface{}) error {
	if cache.Get(key, dest) {
		return nil
	}

	if err := q.Get(dest); err != nil {
		return err
	}

	cache.Set(key, dest, ttl)
	return nil
}
