package movedb

import "time"

const createRunTable = `
CREATE TABLE IF NOT EXISTS runs (
  id varchar primary key,
  created datetime not null,
  seed integer not null,
  moves integer not null
)`

const createMoveTable = `
CREATE TABLE IF NOT EXISTS moves (
  run varchar not null references runs(id),
  idx integer not null,
  origin varchar not null,
  card varchar not null,
  movement varchar not null,
  destination varchar not null,
  primary key (run, idx)
)`

const createZobristTable = `
CREATE TABLE IF NOT EXISTS zobrist (
  run varchar not null references runs(id),
  kind varchar not null,
  idx integer not null,
  value integer not null,
  primary key (run, kind, idx)
)`

const insertRun = `
INSERT INTO runs (id, created, seed, moves)
VALUES (:id, :created, :seed, :moves)
`

const insertMove = `
INSERT INTO moves (run, idx, origin, card, movement, destination)
VALUES (:run, :idx, :origin, :card, :movement, :destination)
`

const insertZobrist = `
INSERT INTO zobrist (run, kind, idx, value)
VALUES (:run, :kind, :idx, :value)
`

const selectRuns = `
SELECT id, created, seed, moves FROM runs ORDER BY created, id
`

const selectRun = `
SELECT id, created, seed, moves FROM runs WHERE id = ?
`

const selectMoves = `
SELECT run, idx, origin, card, movement, destination
FROM moves WHERE run = ? ORDER BY idx
`

const selectZobrist = `
SELECT run, kind, idx, value
FROM zobrist WHERE run = ? AND kind = ? ORDER BY idx
`

type Run struct {
	ID      string    `db:"id"`
	Created time.Time `db:"created"`
	Seed    int64     `db:"seed"`
	Moves   int       `db:"moves"`
}

type moveRow struct {
	Run         string `db:"run"`
	Idx         int    `db:"idx"`
	Origin      string `db:"origin"`
	Card        string `db:"card"`
	Movement    string `db:"movement"`
	Destination string `db:"destination"`
}

type zobristRow struct {
	Run   string `db:"run"`
	Kind  string `db:"kind"`
	Idx   int    `db:"idx"`
	Value int64  `db:"value"`
}
