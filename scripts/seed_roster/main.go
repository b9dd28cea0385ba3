// Command seed_roster loads a roster JSON file into the team_members table.
// The file maps group IDs to teams, each team a list of member names:
//
//	{"5A": [["Ana López", "José Pérez"], ["María Ñuñez"]], "5B": [...]}
//
// Team IDs are derived as "<group>-<n>" with n starting at 1, matching the
// IDs the API hands out on login.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS team_members (
	team_id     TEXT NOT NULL,
	group_id    TEXT NOT NULL,
	team_number INTEGER NOT NULL,
	member_name TEXT NOT NULL,
	PRIMARY KEY (team_id, member_name)
)`

func main() {
	var (
		dsn        string
		rosterPath string
		truncate   bool
	)
	flag.StringVar(&dsn, "dsn", os.Getenv("DATABASE_URL"), "Postgres DSN")
	flag.StringVar(&rosterPath, "roster", "roster.json", "Path to the roster JSON file")
	flag.BoolVar(&truncate, "truncate", false, "Delete existing roster rows before seeding")
	flag.Parse()

	if dsn == "" {
		log.Fatal("missing -dsn (or DATABASE_URL)")
	}

	raw, err := os.ReadFile(rosterPath)
	if err != nil {
		log.Fatalf("read roster file: %v", err)
	}
	var roster map[string][][]string
	if err := json.Unmarshal(raw, &roster); err != nil {
		log.Fatalf("parse roster file: %v", err)
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer db.Close() //nolint:errcheck

	if _, err := db.Exec(schema); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	tx, err := db.Beginx()
	if err != nil {
		log.Fatalf("begin: %v", err)
	}
	if truncate {
		if _, err := tx.Exec(`DELETE FROM team_members`); err != nil {
			log.Fatalf("truncate roster: %v", err)
		}
	}

	inserted := 0
	for groupID, teams := range roster {
		for i, members := range teams {
			teamNumber := i + 1
			teamID := fmt.Sprintf("%s-%d", groupID, teamNumber)
			for _, member := range members {
				_, err := tx.Exec(
					`INSERT INTO team_members (team_id, group_id, team_number, member_name)
					 VALUES ($1, $2, $3, $4)
					 ON CONFLICT (team_id, member_name) DO NOTHING`,
					teamID, groupID, teamNumber, member)
				if err != nil {
					log.Fatalf("insert %s/%s: %v", teamID, member, err)
				}
				inserted++
			}
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("commit: %v", err)
	}
	log.Printf("seeded %d roster rows from %s", inserted, rosterPath)
}
