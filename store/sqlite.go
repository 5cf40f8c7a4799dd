// Package store は、データの永続化機能を提供します。
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stsysd/payback/db"
	"github.com/stsysd/payback/model"
)

// PersonStore はアドレス帳全体の保存と読み込みを行うインターフェースです。
type PersonStore interface {
	// ListPersons は保存されているすべての従業員を登録順に取得します。
	ListPersons(ctx context.Context) ([]*model.Person, error)
	// SavePersons は保存内容をpersonsで置き換えます。
	SavePersons(ctx context.Context, persons []*model.Person) error
	// Close はストアの接続を閉じます。
	Close() error
}

// MigrateFunc はスキーマのマイグレーションを行う関数です。
type MigrateFunc func(*sql.DB) error

// SQLiteStore はSQLiteを使用したPersonStoreの実装です。
type SQLiteStore struct {
	conn    *sql.DB
	queries *db.Queries
}

var _ PersonStore = (*SQLiteStore)(nil)

// DBFileName はデータディレクトリ内のデータベースファイル名です。
const DBFileName = "payback.db"

// NewSQLiteStore は新しいSQLiteStoreを作成します。
func NewSQLiteStore(dataDir string, migrate MigrateFunc) (*SQLiteStore, error) {
	// データディレクトリの作成（存在しない場合）
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	// SQLiteデータベースファイルのパス
	dbPath := filepath.Join(dataDir, DBFileName)

	// SQLiteデータベースへの接続
	conn, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	// マイグレーションの実行
	if err := migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize database tables: %w", err)
	}

	return &SQLiteStore{
		conn:    conn,
		queries: db.New(conn),
	}, nil
}

// ListPersons は保存されているすべての従業員を取得します。
func (s *SQLiteStore) ListPersons(ctx context.Context) ([]*model.Person, error) {
	dbPersons, err := s.queries.ListPersons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}

	dbTags, err := s.queries.ListPersonTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list person tags: %w", err)
	}

	// タグは position 順に並んでいる
	tagsByPerson := make(map[int64][]string)
	for _, t := range dbTags {
		tagsByPerson[t.PersonID] = append(tagsByPerson[t.PersonID], t.Tag)
	}

	// 結果の変換
	persons := make([]*model.Person, 0, len(dbPersons))
	for _, p := range dbPersons {
		person, err := model.LoadPerson(
			int(p.ID),
			p.Name,
			p.Phone,
			p.Email,
			p.Address,
			int(p.YearJoined),
			tagsByPerson[p.ID],
		)
		if err != nil {
			return nil, fmt.Errorf("invalid person %d in database: %w", p.ID, err)
		}
		persons = append(persons, person)
	}

	return persons, nil
}

// SavePersons は保存内容をpersonsで置き換えます。
// 途中で失敗した場合は何も変更しません。
func (s *SQLiteStore) SavePersons(ctx context.Context, persons []*model.Person) error {
	// トランザクションの開始
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// トランザクションをロールバックするための遅延関数
	defer func() {
		if tx != nil {
			tx.Rollback() // 成功した場合は既にnilになっているためエラーは無視
		}
	}()

	// sqlcで生成されたクエリを使用（トランザクション内で）
	queriesWithTx := s.queries.WithTx(tx)

	// 既存の内容を削除
	if err := queriesWithTx.DeleteAllPersonTags(ctx); err != nil {
		return fmt.Errorf("failed to delete existing tags: %w", err)
	}
	if err := queriesWithTx.DeleteAllPersons(ctx); err != nil {
		return fmt.Errorf("failed to delete existing persons: %w", err)
	}

	for i, p := range persons {
		err := queriesWithTx.CreatePerson(ctx, db.CreatePersonParams{
			ID:         int64(p.ID().Int()),
			Name:       p.Name().String(),
			Phone:      p.Phone().String(),
			Email:      p.Email().String(),
			Address:    p.Address().String(),
			YearJoined: int64(p.YearJoined().Int()),
			Position:   int64(i),
		})
		if err != nil {
			return fmt.Errorf("failed to create person %s: %w", p.ID(), err)
		}

		// タグを個別に挿入
		for j, tag := range p.TagStrings() {
			err := queriesWithTx.CreatePersonTag(ctx, db.CreatePersonTagParams{
				PersonID: int64(p.ID().Int()),
				Position: int64(j),
				Tag:      tag,
			})
			if err != nil {
				return fmt.Errorf("failed to create tag %s: %w", tag, err)
			}
		}
	}

	// トランザクションのコミット
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	tx = nil // コミットが成功したのでnilにして遅延関数でのロールバックを防ぐ

	return nil
}

// CountPersons は保存されている従業員の数を返します。
func (s *SQLiteStore) CountPersons(ctx context.Context) (int, error) {
	count, err := s.queries.CountPersons(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count persons: %w", err)
	}
	return int(count), nil
}

// Close はデータベース接続を閉じます。
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}
