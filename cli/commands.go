package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stsysd/payback/command"
	"github.com/stsysd/payback/model"
)

// appFunc は初期化済みのAppを返します。
type appFunc func() *App

// addCommands はアドレス帳を操作するサブコマンドをparentに登録します。
func addCommands(parent *cobra.Command, app appFunc) {
	parent.AddCommand(
		newAddCommand(app),
		newEditCommand(app),
		newListCommand(app),
		newFindCommand(app),
		newDeleteCommand(app),
	)
}

func newAddCommand(app appFunc) *cobra.Command {
	var (
		name, phone, email, address, year string
		tags                              []string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an employee",
		Example: `  payback add --name "John Doe" --phone 98765432 --email johnd@example.com \
    --address "311, Clementi Ave 2, #02-25" --year 2024 --tag friends --tag owesMoney`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := model.NewName(name)
			if err != nil {
				return err
			}
			ph, err := model.NewPhone(phone)
			if err != nil {
				return err
			}
			em, err := model.NewEmail(email)
			if err != nil {
				return err
			}
			addr, err := model.NewAddress(address)
			if err != nil {
				return err
			}
			y, err := model.ParseYearJoined(year)
			if err != nil {
				return err
			}
			t, err := model.NewTags(tags)
			if err != nil {
				return err
			}

			c := command.NewAddCommand(n, ph, em, addr, y, t)
			return app().run(cmd.Context(), "add", true, func(b command.Book) (*command.Result, error) {
				return c.Execute(b)
			})
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "employee name")
	cmd.Flags().StringVarP(&phone, "phone", "p", "", "phone number")
	cmd.Flags().StringVarP(&email, "email", "e", "", "email address")
	cmd.Flags().StringVarP(&address, "address", "a", "", "address")
	cmd.Flags().StringVarP(&year, "year", "y", "", "year joined (four digits)")
	cmd.Flags().StringArrayVarP(&tags, "tag", "t", nil, "tag (repeatable)")
	for _, f := range []string{"name", "phone", "email", "address", "year"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func newEditCommand(app appFunc) *cobra.Command {
	var name, phone, email, address, tag string
	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit the details of the employee with the given ID",
		Long: `Edits the details of the employee with the ID provided.
Existing values will be overwritten by the input values.
Remove all the employee's tags with --tag -1.`,
		Example: `  payback edit 240001 --phone 91234567 --email johndoe@example.com
  payback edit 240001 --name "John Tan" --tag "1 friend"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := model.ParsePersonID(args[0])
			if err != nil {
				return err
			}

			d := &command.EditDescriptor{}
			flags := cmd.Flags()
			if flags.Changed("name") {
				v, err := model.NewName(name)
				if err != nil {
					return err
				}
				d.Name = &v
			}
			if flags.Changed("phone") {
				v, err := model.NewPhone(phone)
				if err != nil {
					return err
				}
				d.Phone = &v
			}
			if flags.Changed("email") {
				v, err := model.NewEmail(email)
				if err != nil {
					return err
				}
				d.Email = &v
			}
			if flags.Changed("address") {
				v, err := model.NewAddress(address)
				if err != nil {
					return err
				}
				d.Address = &v
			}
			if flags.Changed("tag") {
				te, err := parseTagEdit(tag)
				if err != nil {
					return err
				}
				d.TagEdit = te
			}

			if !d.IsAnyFieldEdited() {
				return command.NewError(command.KindNotEdited, command.MessageNotEdited)
			}

			c := command.NewEditCommand(id, d)
			return app().run(cmd.Context(), "edit", true, func(b command.Book) (*command.Result, error) {
				return c.Execute(b)
			})
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "new name")
	cmd.Flags().StringVarP(&phone, "phone", "p", "", "new phone number")
	cmd.Flags().StringVarP(&email, "email", "e", "", "new email address")
	cmd.Flags().StringVarP(&address, "address", "a", "", "new address")
	cmd.Flags().StringVarP(&tag, "tag", "t", "", `tag edit "INDEX NEW_TAG", or -1 to remove all tags`)
	return cmd
}

// parseTagEdit は "INDEX NEW_TAG" 形式のタグ編集指示を解析します。
func parseTagEdit(raw string) (command.TagEdit, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil, model.NewValidationError("tag", "tag edit must be INDEX NEW_TAG or -1")
	}
	index, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, model.NewValidationError("tag", fmt.Sprintf("invalid tag index %q", fields[0]))
	}
	return command.ParseTagEdit(index, strings.Join(fields[1:], " ")), nil
}

func newListCommand(app appFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			err := a.run(cmd.Context(), "list", false, func(b command.Book) (*command.Result, error) {
				return command.ListCommand{}.Execute(b)
			})
			if err != nil {
				return err
			}
			renderPersons(a.out, a.book.FilteredPersons())
			return nil
		},
	}
}

func newFindCommand(app appFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "find KEYWORD [KEYWORD...]",
		Short: "Show employees whose names contain any of the keywords",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := command.NewFindCommand(args)
			if err != nil {
				return err
			}
			a := app()
			err = a.run(cmd.Context(), "find", false, func(b command.Book) (*command.Result, error) {
				return c.Execute(b)
			})
			if err != nil {
				return err
			}
			renderPersons(a.out, a.book.FilteredPersons())
			return nil
		},
	}
}

func newDeleteCommand(app appFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete the employee with the given ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := model.ParsePersonID(args[0])
			if err != nil {
				return err
			}
			c := command.NewDeleteCommand(id)
			return app().run(cmd.Context(), "delete", true, func(b command.Book) (*command.Result, error) {
				return c.Execute(b)
			})
		},
	}
}
