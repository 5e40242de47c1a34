package library

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"git.lost.host/meutraa/arcview/internal/game"
	_ "github.com/mattn/go-sqlite3"
)

type DefaultLibrary struct {
	Path string

	db *sql.DB
}

func (l *DefaultLibrary) Init() error {
	db, err := sql.Open("sqlite3", l.Path)
	if err != nil {
		return err
	}
	if l.Path == ":memory:" {
		// Each connection to :memory: is a new database
		db.SetMaxOpenConns(1)
	}

	initStatement := `
	create table if not exists loads
	  (
		  id integer not null primary key,
		  sum text,
		  path text,
		  loaded_at integer,
		  ok integer,
		  error text,
		  audio_offset integer,
		  counts blob
	  );
	`
	_, err = db.Exec(initStatement)
	if nil != err {
		db.Close()
		return fmt.Errorf("unable to create library tables: %w", err)
	}

	l.db = db
	return nil
}

func (l *DefaultLibrary) Deinit() {
	if nil != l.db {
		l.db.Close()
	}
}

func (l *DefaultLibrary) Hash(text []byte) string {
	sum := sha256.Sum256(text)
	return base64.StdEncoding.EncodeToString(sum[:])
}

// CountNotes summarises a parsed chart for an entry.
func CountNotes(b *game.Beatmap) Counts {
	return Counts{
		Floor:  b.Count(game.Floor),
		Long:   b.Count(game.Long),
		Arc:    b.Count(game.Arc),
		Sky:    b.Count(game.Sky),
		Timing: b.Count(game.Timing),
	}
}

func (l *DefaultLibrary) Record(e *Entry) error {
	data, err := json.Marshal(e.Counts)
	if nil != err {
		return fmt.Errorf("unable to marshal note counts: %w", err)
	}
	if e.LoadedAt.IsZero() {
		e.LoadedAt = time.Now()
	}
	_, err = l.db.Exec(
		"insert into loads(sum, path, loaded_at, ok, error, audio_offset, counts) values(?, ?, ?, ?, ?, ?, ?)",
		e.Sum, e.Path, e.LoadedAt.UnixNano(), e.Ok, e.Error, e.AudioOffset, data,
	)
	if nil != err {
		return fmt.Errorf("unable to record chart load: %w", err)
	}
	return nil
}

func (l *DefaultLibrary) Load(sum string) ([]Entry, error) {
	return l.query("select sum, path, loaded_at, ok, error, audio_offset, counts from loads where sum = ? order by id", sum)
}

func (l *DefaultLibrary) Recent(limit int) ([]Entry, error) {
	return l.query("select sum, path, loaded_at, ok, error, audio_offset, counts from loads order by id desc limit ?", limit)
}

func (l *DefaultLibrary) query(query string, args ...interface{}) ([]Entry, error) {
	entries := []Entry{}
	rows, err := l.db.Query(query, args...)
	if nil != err {
		return entries, fmt.Errorf("unable to load chart history: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var e Entry
		var loadedAt int64
		var counts []byte
		if err := rows.Scan(&e.Sum, &e.Path, &loadedAt, &e.Ok, &e.Error, &e.AudioOffset, &counts); nil != err {
			return entries, fmt.Errorf("unable to scan chart history: %w", err)
		}
		if err := json.Unmarshal(counts, &e.Counts); nil != err {
			log.Println("unable to unmarshal note counts", err)
		}
		e.LoadedAt = time.Unix(0, loadedAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
