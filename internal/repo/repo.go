package repo

import (
	"FoundLink/internal/model"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// InitDB открывает соединение и прогоняет миграции. Пустой DSN — sqlite
// в памяти (данные живут пока жив процесс), postgres://... — Postgres,
// иначе DSN трактуется как путь к файлу sqlite.
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch {
	case dsn == "":
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: "file:foundlink?mode=memory&cache=shared"}
	case strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://"):
		dial = postgres.Open(dsn)
	default:
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.Item{}, &model.MatchSuggestion{}); err != nil {
		return nil, err
	}
	return db, nil
}
