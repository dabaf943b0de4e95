package db

const CREATE_KPI_TICK_TABLE = `
	CREATE TABLE IF NOT EXISTS kpi_tick (
		id               BIGSERIAL PRIMARY KEY,
		snapshot_id      UUID        NOT NULL,
		ticked_at        TIMESTAMPTZ NOT NULL,
		delta            INTEGER     NOT NULL,
		total_pairs      INTEGER     NOT NULL,
		active_processes INTEGER     NOT NULL,
		defect_rate      DOUBLE PRECISION NOT NULL,
		utilization      DOUBLE PRECISION NOT NULL,
		on_time          DOUBLE PRECISION NOT NULL
	)
`

const INSERT_KPI_TICK = `
	INSERT INTO kpi_tick (
		snapshot_id,
		ticked_at,
		delta,
		total_pairs,
		active_processes,
		defect_rate,
		utilization,
		on_time
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`
