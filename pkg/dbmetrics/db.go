package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/m04kA/MCN-SessionService/pkg/metrics"
)

// DB обёртка над *sql.DB, снимающая метрики с каждого запроса
// и периодически публикующая состояние connection pool
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
	dbName  string
}

// Wrap оборачивает db сбором метрик запросов
func Wrap(db *sql.DB, collector *metrics.Metrics, dbName string) *DB {
	return &DB{db: db, metrics: collector, dbName: dbName}
}

// WrapWithDefault оборачивает db и запускает периодический сбор pool-статистики
// Сбор останавливается закрытием stopCh
func WrapWithDefault(db *sql.DB, collector *metrics.Metrics, dbName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, collector, dbName)
	go wrapped.collectPoolStats(15*time.Second, stopCh)
	return wrapped
}

// QueryRowContext выполняет запрос, возвращающий одну строку
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("query_row", nil, time.Since(start))
	return row
}

// QueryContext выполняет запрос, возвращающий набор строк
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("query", err, time.Since(start))
	return rows, err
}

// ExecContext выполняет запрос без результата
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := d.db.ExecContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("exec", err, time.Since(start))
	return result, err
}

// BeginTx открывает транзакцию, запросы которой также учитываются в метриках
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	start := time.Now()
	tx, err := d.db.BeginTx(ctx, opts)
	d.metrics.ObserveDBQuery("begin_tx", err, time.Since(start))
	if err != nil {
		return nil, err
	}
	return &metricsTx{tx: tx, metrics: d.metrics}, nil
}

func (d *DB) collectPoolStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := d.db.Stats()
			d.metrics.SetDBPoolStats(d.dbName, stats.OpenConnections, stats.InUse, stats.Idle)
		}
	}
}

// metricsTx транзакция с учётом метрик по каждому запросу
type metricsTx struct {
	tx      *sql.Tx
	metrics *metrics.Metrics
}

func (t *metricsTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.metrics.ObserveDBQuery("tx_query_row", nil, time.Since(start))
	return row
}

func (t *metricsTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.metrics.ObserveDBQuery("tx_query", err, time.Since(start))
	return rows, err
}

func (t *metricsTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := t.tx.ExecContext(ctx, query, args...)
	t.metrics.ObserveDBQuery("tx_exec", err, time.Since(start))
	return result, err
}

func (t *metricsTx) Commit() error {
	start := time.Now()
	err := t.tx.Commit()
	t.metrics.ObserveDBQuery("commit", err, time.Since(start))
	return err
}

func (t *metricsTx) Rollback() error {
	return t.tx.Rollback()
}
