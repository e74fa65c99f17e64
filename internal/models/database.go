package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DB is the database used by the backend.
var DB *gorm.DB

type LedgerContext string

const (
	DBContextURL LedgerContext = "ngo-ledger-url"
)

// Connect opens the SQLite database, migrates the schema and configures the connection pool.
func Connect(dsn string) error {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger:        log.Logger,
			SlowThreshold: slowQueryThreshold,
		},
	}

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection serializes all write transactions. Verification
	// and ledger updates rely on this.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = db.Callback().Query().After("*").Register("ngo_ledger:after_query", queryCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Query().After("*").Register("ngo_ledger:after_query_general", generalCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("ngo_ledger:after_create", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("ngo_ledger:after_create_general", generalCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("ngo_ledger:after_update", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("ngo_ledger:after_update_general", generalCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Delete().After("*").Register("ngo_ledger:after_delete", deleteCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Delete().After("*").Register("ngo_ledger:after_delete_general", generalCallback)
	if err != nil {
		return err
	}

	DB = db
	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Replace pluralized "ies" with "y"
		match := regexp.MustCompile("ies$")
		name = match.ReplaceAllString(name, "y")

		// Remove plural "s"
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: foreign_donation_reports.transaction_id") {
		db.Error = ErrReportExists
	}

	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: projects.name") {
		db.Error = ErrProjectNameNotUnique
	}

	if strings.Contains(db.Error.Error(), "FOREIGN KEY constraint failed") {
		db.Error = ErrReferenceNotFound
	}
}

// deleteCallback translates foreign key failures on delete into a
// referential hold error.
func deleteCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	if strings.Contains(db.Error.Error(), "FOREIGN KEY constraint failed") {
		db.Error = ErrStillReferenced
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	db.Error = generalError(db.Error)
}

// generalError logs errors the user cannot act on and replaces them with ErrGeneral.
func generalError(err error) error {
	if err == nil {
		return nil
	}

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if err.Error() == "sql: database is closed" || reflect.TypeOf(err) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", err, err.Error())
		return ErrGeneral
	}

	return err
}

// transaction runs fc in a database transaction.
//
// Beginning and committing the transaction does not run the callbacks, so
// their errors are translated here.
func transaction(db *gorm.DB, fc func(tx *gorm.DB) error) error {
	return generalError(db.Transaction(fc))
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(Project{}, Donor{}, BudgetAllocation{}, Transaction{}, ForeignDonationReport{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
