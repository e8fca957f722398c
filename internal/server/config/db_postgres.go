// Package config содержит инициализацию подключения к базе данных сервера
// и доступ к глобальному экземпляру *sql.DB.
//
// Пакет выполняет:
//   - открытие соединения с PostgreSQL (через драйвер pgx);
//   - проверку доступности базы (Ping);
//   - запуск миграций (golang-migrate) при старте сервера.
//
// Примечание: пакет использует глобальную переменную DB. Инициализация должна
// выполняться один раз при запуске сервера и только при storage.driver=postgres.
package config

import (
	"database/sql"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"go.uber.org/zap"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v4/stdlib"
)

// DB — глобальный экземпляр подключения к базе данных.
//
// Инициализируется функцией Init и используется другими пакетами через GetDB.
var DB *sql.DB

// Init открывает подключение к базе данных по DSN, настраивает пул,
// проверяет доступность и применяет миграции.
//
// Миграции запускаются из cfg.Migrations.Path (по умолчанию file://migrations/postgres).
// Если миграции уже применены, ошибка migrate.ErrNoChange не считается ошибкой.
func Init(cfg *Config, log *zap.SugaredLogger) error {
	var err error
	DB, err = sql.Open("pgx", cfg.DB.DSN)
	if err != nil {
		log.Errorf("error to connect db: %v", err)
		return err
	}

	DB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	DB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	DB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)
	DB.SetConnMaxIdleTime(cfg.DB.ConnMaxIdleTime)

	if err = DB.Ping(); err != nil {
		log.Errorf("error check db connection: %v", err)
		return err
	}

	if !cfg.Migrations.Enabled {
		log.Info("migrations disabled")
		return nil
	}

	// Запуск миграций
	driver, err := postgres.WithInstance(DB, &postgres.Config{})
	if err != nil {
		log.Errorf("error creating migration driver: %v", err)
		return err
	}

	// создаём миграции с выбранным драйвером
	m, err := migrate.NewWithDatabaseInstance(cfg.Migrations.Path, "postgres", driver)
	if err != nil {
		log.Errorf("error creating migrations: %v", err)
		return err
	}

	// запускаем миграции
	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Errorf("error applying migrations: %v", err)
		return err
	}

	log.Info("migrations applied successfully")
	return nil
}

// GetDB возвращает текущий глобальный экземпляр *sql.DB.
//
// Возвращаемое значение может быть nil, если Init ещё не вызывался
// или завершился ошибкой.
func GetDB() *sql.DB {
	return DB
}
