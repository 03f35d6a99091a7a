package main

import (
	"net/http"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/nightingaleproject/csv2fhir/api"
	"github.com/nightingaleproject/csv2fhir/client"
	"github.com/nightingaleproject/csv2fhir/datasource"
	"github.com/nightingaleproject/csv2fhir/deathrecord"
)

func main() {
	log := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) { w.Out = os.Stdout })).
		With().Timestamp().Caller().Logger()

	if err := godotenv.Load(".env"); err != nil {
		log.Debug().Msg("No .env file found, using process environment")
	}

	transformer := deathrecord.NewTransformer(deathrecord.DefaultGenerator(), log)

	var sqlSource *datasource.SQLSource
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		query := os.Getenv("RECORDS_QUERY")
		if query == "" {
			log.Fatal().Msg("DATABASE_URL is set but RECORDS_QUERY is not")
		}
		db, err := sqlx.Connect("postgres", dsn)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to the database")
		}
		defer db.Close()
		sqlSource = datasource.NewSQLSource(db, query, log)
		log.Info().Msg("Database record source enabled")
	}

	var submitter *client.Client
	if endpoint := os.Getenv("FHIR_ENDPOINT"); endpoint != "" {
		submitter = client.New(endpoint, log)
		log.Info().Str("endpoint", endpoint).Msg("Bundle forwarding enabled")
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	router := api.NewRouter(transformer, sqlSource, submitter, log)
	log.Info().Str("addr", addr).Msg("Starting csv2fhir")
	if err := http.ListenAndServe(addr, router.Handler()); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
