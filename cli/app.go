// Package cli はpaybackのコマンドラインインターフェースを提供します。
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/stsysd/payback/addressbook"
	"github.com/stsysd/payback/command"
	"github.com/stsysd/payback/model"
	"github.com/stsysd/payback/store"
)

// App はコマンドの実行に必要な依存関係をまとめたものです。
type App struct {
	book   *addressbook.Book
	store  store.PersonStore
	logger *zap.Logger
	out    io.Writer
}

// NewApp は新しいAppを生成します。
func NewApp(book *addressbook.Book, st store.PersonStore, logger *zap.Logger, out io.Writer) *App {
	return &App{
		book:   book,
		store:  st,
		logger: logger,
		out:    out,
	}
}

// Load はストアの内容からAppを生成します。
func Load(ctx context.Context, st store.PersonStore, logger *zap.Logger, out io.Writer) (*App, error) {
	persons, err := st.ListPersons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load address book: %w", err)
	}
	book, err := addressbook.New(persons)
	if err != nil {
		return nil, fmt.Errorf("failed to load address book: %w", err)
	}
	logger.Debug("address book loaded", zap.Int("persons", len(persons)))
	return NewApp(book, st, logger, out), nil
}

// execFunc はアドレス帳に対してコマンドを実行する関数です。
type execFunc func(b command.Book) (*command.Result, error)

// run はコマンドを実行し、変更があれば保存して結果を出力します。
func (a *App) run(ctx context.Context, name string, mutates bool, exec execFunc) error {
	logger := a.logger.With(zap.String("command", name))

	result, err := exec(a.book)
	if err != nil {
		var cmdErr *command.Error
		if errors.As(err, &cmdErr) || model.IsValidationError(err) {
			logger.Warn("command rejected", zap.Error(err))
		} else {
			logger.Error("command failed", zap.Error(err))
		}
		return err
	}

	if mutates {
		if err := a.store.SavePersons(ctx, a.book.Persons()); err != nil {
			logger.Error("failed to save address book", zap.Error(err))
			return fmt.Errorf("failed to save address book: %w", err)
		}
	}

	logger.Info("command executed")
	fmt.Fprintln(a.out, result.Feedback)
	return nil
}
