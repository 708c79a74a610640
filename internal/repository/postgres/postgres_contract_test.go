package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/bharaths07/sportsv1.1-sub000/internal/repository"
	"github.com/bharaths07/sportsv1.1-sub000/internal/repository/contract"
)

var (
	db     *sql.DB
	pool   *pgxpool.Pool
	dsn    string
	skippy bool
)

func TestMain(m *testing.M) {
	if os.Getenv("CONTRACT_TESTS") != "1" {
		// allow skipping contract tests unless explicitly enabled
		skippy = true
		os.Exit(m.Run())
	}

	dsn = buildDSNFromEnv()
	if dsn == "" {
		fmt.Println("[contract] DATABASE_URL or APP_POSTGRES_* env not set; skipping")
		skippy = true
		os.Exit(m.Run())
	}

	var err error
	db, err = sql.Open("pgx", dsn)
	if err != nil {
		fmt.Println("[contract] sql open error:", err)
		os.Exit(1)
	}
	if err := db.Ping(); err != nil {
		fmt.Println("[contract] db ping error:", err)
		os.Exit(1)
	}

	goose.SetBaseFS(repository.MigrationsFS())
	if err := goose.SetDialect("postgres"); err != nil {
		fmt.Println("[contract] goose dialect error:", err)
		os.Exit(1)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		fmt.Println("[contract] goose up error:", err)
		os.Exit(1)
	}

	pool, err = pgxpool.New(context.Background(), dsn)
	if err != nil {
		fmt.Println("[contract] pgxpool new error:", err)
		os.Exit(1)
	}

	code := m.Run()
	pool.Close()
	db.Close()
	os.Exit(code)
}

func skipIfNeeded(t *testing.T) {
	if skippy {
		t.Skip("contract tests skipped; set CONTRACT_TESTS=1 and provide DB env")
	}
}

func buildDSNFromEnv() string {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		return v
	}
	user := firstNonEmpty(os.Getenv("APP_POSTGRES_USER"), os.Getenv("POSTGRES_USER"))
	pass := firstNonEmpty(os.Getenv("APP_POSTGRES_PASSWORD"), os.Getenv("POSTGRES_PASSWORD"))
	host := firstNonEmpty(os.Getenv("APP_POSTGRES_HOST"), os.Getenv("POSTGRES_HOST"), "localhost")
	port := firstNonEmpty(os.Getenv("APP_POSTGRES_PORT"), os.Getenv("POSTGRES_PORT"), "5432")
	name := firstNonEmpty(os.Getenv("APP_POSTGRES_DB"), os.Getenv("POSTGRES_DB"))
	ssl := firstNonEmpty(os.Getenv("APP_POSTGRES_SSLMODE"), "disable")
	if user == "" || pass == "" || name == "" {
		return ""
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", user, pass, host, port, name, ssl)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func truncateAll(t *testing.T) {
	t.Helper()
	if _, err := db.Exec("TRUNCATE TABLE feed_items, certificates, achievements, matches, team_members, teams CASCADE"); err != nil {
		t.Fatalf("truncate failed: %v", err)
	}
}

func makeMatchRepo(t *testing.T) (repository.MatchRepository, func()) {
	skipIfNeeded(t)
	truncateAll(t)
	return NewMatchRepository(pool), func() { truncateAll(t) }
}

func makeDerivedRepos(t *testing.T) (
	repository.AchievementRepository,
	repository.CertificateRepository,
	repository.FeedRepository,
	func(ctx context.Context, id string) error,
	func(),
) {
	skipIfNeeded(t)
	truncateAll(t)
	matches := NewMatchRepository(pool)
	mkMatch := func(ctx context.Context, id string) error {
		_, err := matches.Create(ctx, contract.SampleMatch(id))
		return err
	}
	return NewAchievementRepository(pool), NewCertificateRepository(pool), NewFeedRepository(pool), mkMatch, func() { truncateAll(t) }
}

func makeRosterRepo(t *testing.T) (repository.RosterRepository, func()) {
	skipIfNeeded(t)
	truncateAll(t)
	return NewRosterRepository(pool), func() { truncateAll(t) }
}

func makeTx(t *testing.T) (repository.TxManager, repository.MatchRepository, func()) {
	skipIfNeeded(t)
	truncateAll(t)
	return NewTxManager(pool), NewMatchRepository(pool), func() { truncateAll(t) }
}

func makePinger(t *testing.T) (repository.Pinger, func()) {
	skipIfNeeded(t)
	return NewPinger(pool), func() {}
}

func TestMatchRepository_PostgresContract(t *testing.T) {
	contract.RunMatchRepositoryContract(t, makeMatchRepo)
}

func TestDerivedRecords_PostgresContract(t *testing.T) {
	contract.RunDerivedRecordsContract(t, makeDerivedRepos)
}

func TestRosterRepository_PostgresContract(t *testing.T) {
	contract.RunRosterRepositoryContract(t, makeRosterRepo)
}

func TestTxManager_PostgresContract(t *testing.T) {
	contract.RunTxManagerContract(t, makeTx)
}

func TestPinger_PostgresContract(t *testing.T) {
	contract.RunPingerContract(t, makePinger)
}
