// Package db はスキーマのマイグレーションとsqlcで生成したクエリを提供します。
package db

//go:generate go tool sqlc generate -f ../sqlc.yaml

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed schema/*.sql
var embedMigrations embed.FS

// Migrate はデータベースに対してマイグレーションを実行します。
// ログは出力しません。
func Migrate(conn *sql.DB) error {
	return Migrator(zap.NewNop())(conn)
}

// Migrator はloggerにgooseのログを出力するマイグレーション関数を返します。
func Migrator(logger *zap.Logger) func(*sql.DB) error {
	return func(conn *sql.DB) error {
		// 外部キー制約を有効化
		_, err := conn.Exec(`PRAGMA foreign_keys = ON;`)
		if err != nil {
			return fmt.Errorf("failed to enable foreign keys: %w", err)
		}

		// goose の設定
		goose.SetBaseFS(embedMigrations)
		goose.SetLogger(&gooseLogger{sugar: logger.Named("migrate").Sugar()})

		// SQLite 用に goose を設定
		if err := goose.SetDialect("sqlite3"); err != nil {
			return fmt.Errorf("failed to set goose dialect: %w", err)
		}

		// マイグレーションを実行
		if err := goose.Up(conn, "schema"); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		return nil
	}
}

// gooseLogger はgoose.Loggerをzapに変換します。
type gooseLogger struct {
	sugar *zap.SugaredLogger
}

func (l *gooseLogger) Printf(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}

func (l *gooseLogger) Fatalf(format string, v ...interface{}) {
	l.sugar.Fatalf(format, v...)
}
