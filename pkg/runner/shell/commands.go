package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tableflip.dev/thinktank/pkg/commands/options"
	"tableflip.dev/thinktank/pkg/item"
	"tableflip.dev/thinktank/pkg/lifecycle"
	"tableflip.dev/thinktank/pkg/printers"
	"tableflip.dev/thinktank/pkg/runner/classify"
	"tableflip.dev/thinktank/pkg/runner/key"
)

// newCommand builds a fresh command tree so flag values never leak between
// lines.
func (s *Shell) newCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "thinktank",
		Short:         "Organize threads, spaces and prompts.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		s.newItem(),
		s.rename(),
		s.edit(),
		s.commit(),
		s.cancel(),
		s.transition("pin", "pinned", "Pin an item.", s.Organizer.Pin),
		s.transition("unpin", "unpinned", "Unpin an item.", s.Organizer.Unpin),
		s.transition("archive", "archived", "Move an item to the archive.", s.Organizer.Archive),
		s.transition("delete", "deleted", "Move an item to the trash.", s.Organizer.Delete),
		s.transition("restore", "restored", "Bring an archived or deleted item back.", s.Organizer.Restore),
		s.purge(),
		s.emptyTrash(),
		s.move(),
		s.list(),
		s.recent(),
		s.pinned(),
		s.trash(),
		s.categories(),
		s.category(),
		s.classify(),
		s.key(),
		&cobra.Command{Use: "exit", Short: "End the session.", RunE: func(*cobra.Command, []string) error { return nil }},
	)
	return root
}

// emit prints v as JSON or runs text against a pretty printer.
func (s *Shell) emit(v interface{}, text func(pp *printers.PrettyPrint)) error {
	if s.JSON {
		return printers.JSON(s.out(), v)
	}
	text(s.printer())
	return nil
}

func (s *Shell) done(verb string, it item.Item) error {
	return s.emit(it, func(pp *printers.PrettyPrint) { pp.Done(verb, it) })
}

func (s *Shell) newItem() *cobra.Command {
	return &cobra.Command{
		Use:       "new <kind> <label>",
		Short:     "Create a thread, space or prompt.",
		Args:      cobra.MinimumNArgs(2),
		ValidArgs: options.KindNames(),
		RunE: func(_ *cobra.Command, args []string) error {
			k, err := item.ParseKind(args[0])
			if err != nil {
				return err
			}
			it, err := s.Organizer.Create(k, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			return s.done("created", it)
		},
	}
}

func (s *Shell) rename() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <label>",
		Short: "Rename an item.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			it, err := s.Organizer.Rename(args[0], strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			return s.done("renamed", it)
		},
	}
}

func (s *Shell) edit() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id>",
		Short: "Start editing an item's label.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := s.Organizer.BeginEdit(args[0]); err != nil {
				return err
			}
			it, err := s.Organizer.Find(args[0])
			if err != nil {
				return err
			}
			return s.done("editing", it)
		},
	}
}

func (s *Shell) commit() *cobra.Command {
	return &cobra.Command{
		Use:   "commit <label>",
		Short: "Save the label of the item being edited.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, _ := s.Organizer.Editing()
			if err := s.Organizer.CommitEdit(strings.Join(args, " ")); err != nil {
				return err
			}
			it, err := s.Organizer.Find(id)
			if err != nil {
				return err
			}
			return s.done("renamed", it)
		},
	}
}

func (s *Shell) cancel() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel",
		Short: "Stop editing without saving.",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			s.Organizer.CancelEdit()
			return nil
		},
	}
}

func (s *Shell) transition(use, verb, short string, fn func(string) (item.Item, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			it, err := fn(args[0])
			if err != nil {
				return err
			}
			return s.done(verb, it)
		},
	}
}

func (s *Shell) purge() *cobra.Command {
	return &cobra.Command{
		Use:   "purge <id>",
		Short: "Permanently remove an item from the trash.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			it, err := s.Organizer.Find(args[0])
			if err != nil {
				return err
			}
			if err := s.Organizer.Purge(args[0]); err != nil {
				return err
			}
			return s.done("purged", it)
		},
	}
}

func (s *Shell) emptyTrash() *cobra.Command {
	return &cobra.Command{
		Use:   "empty-trash",
		Short: "Permanently remove everything in the trash.",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			n := s.Organizer.EmptyTrash()
			return s.emit(map[string]int{"purged": n}, func(*printers.PrettyPrint) {
				_, _ = fmt.Fprintf(s.out(), "purged %d\n", n)
			})
		},
	}
}

func (s *Shell) move() *cobra.Command {
	return &cobra.Command{
		Use:   "move <from> <to>",
		Short: "Move a space to a new position in the main list.",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			from, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid position %q", args[0])
			}
			to, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid position %q", args[1])
			}
			if err := s.Organizer.MoveSpace(from, to); err != nil {
				return err
			}
			spaces := s.Organizer.List(item.KindSpace, lifecycle.ViewMain)
			return s.emit(spaces, func(pp *printers.PrettyPrint) {
				pp.Title("Spaces")
				pp.Items(spaces...)
			})
		},
	}
}

func (s *Shell) list() *cobra.Command {
	qo := &options.QueryOptions{}
	ko := &options.KindOptions{}
	cmd := &cobra.Command{
		Use:       "list <kind>",
		Short:     "List a collection, optionally filtered and sorted.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: options.KindNames(),
		RunE: func(_ *cobra.Command, args []string) error {
			k, err := ko.Resolve(args)
			if err != nil {
				return err
			}
			c, err := qo.Criteria()
			if err != nil {
				return err
			}
			view := qo.View.View
			if view == "" {
				view = lifecycle.ViewMain
			}
			items := s.Organizer.Query(k, view, c)
			return s.emit(items, func(pp *printers.PrettyPrint) {
				pp.TitleWithCount(cases.Title(language.English).String(k.Plural()), len(items))
				pp.Items(items...)
			})
		},
	}
	options.AddQueryArgs(cmd, qo)
	options.AddKindArg(cmd, ko)
	return cmd
}

func (s *Shell) recent() *cobra.Command {
	ko := &options.KindOptions{}
	cmd := &cobra.Command{
		Use:       "recent <kind>",
		Short:     "Group a collection by when items were last updated.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: options.KindNames(),
		RunE: func(_ *cobra.Command, args []string) error {
			k, err := ko.Resolve(args)
			if err != nil {
				return err
			}
			groups := s.Organizer.Recent(k)
			type group struct {
				Bucket string      `json:"bucket"`
				Items  []item.Item `json:"items"`
			}
			out := make([]group, 0, len(groups))
			for _, g := range groups {
				out = append(out, group{Bucket: g.Bucket.String(), Items: g.Items})
			}
			return s.emit(out, func(pp *printers.PrettyPrint) {
				pp.Groups(groups)
			})
		},
	}
	options.AddKindArg(cmd, ko)
	return cmd
}

func (s *Shell) pinned() *cobra.Command {
	return &cobra.Command{
		Use:   "pinned",
		Short: "Show pinned items across all collections.",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			items := s.Organizer.Pinned()
			over := s.Organizer.PinnedOverflow()
			return s.emit(items, func(pp *printers.PrettyPrint) {
				pp.Pinned(items, over)
			})
		},
	}
}

func (s *Shell) trash() *cobra.Command {
	return &cobra.Command{
		Use:   "trash",
		Short: "Show deleted items and how long until they are purged.",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			entries := s.Organizer.Trash()
			return s.emit(entries, func(pp *printers.PrettyPrint) {
				pp.Trash(entries)
			})
		},
	}
}

func (s *Shell) categories() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List prompt categories.",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			cats := s.Organizer.Categories()
			return s.emit(cats, func(pp *printers.PrettyPrint) {
				pp.Categories(cats, s.Organizer.List(item.KindPrompt, lifecycle.ViewMain))
			})
		},
	}
}

func (s *Shell) category() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage prompt categories.",
	}
	catDone := func(verb string, c item.Category) error {
		return s.emit(c, func(*printers.PrettyPrint) {
			_, _ = fmt.Fprintf(s.out(), "%s category %s %s\n", verb, c.ID, c.Name)
		})
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <name>",
			Short: "Create a category.",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				c, err := s.Organizer.CreateCategory(strings.Join(args, " "))
				if err != nil {
					return err
				}
				return catDone("created", c)
			},
		},
		&cobra.Command{
			Use:   "rename <id> <name>",
			Short: "Rename a category.",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(_ *cobra.Command, args []string) error {
				c, err := s.Organizer.RenameCategory(args[0], strings.Join(args[1:], " "))
				if err != nil {
					return err
				}
				return catDone("renamed", c)
			},
		},
		&cobra.Command{
			Use:   "rm <id>",
			Short: "Delete a category, leaving its prompts ungrouped.",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				if err := s.Organizer.DeleteCategory(args[0]); err != nil {
					return err
				}
				return s.emit(map[string]string{"deleted": args[0]}, func(*printers.PrettyPrint) {
					_, _ = fmt.Fprintf(s.out(), "deleted category %s\n", args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "assign <prompt-id> [category-id]",
			Short: "File a prompt under a category, or ungroup it.",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(_ *cobra.Command, args []string) error {
				catID := ""
				if len(args) == 2 {
					catID = args[1]
				}
				it, err := s.Organizer.AssignCategory(args[0], catID)
				if err != nil {
					return err
				}
				return s.done("filed", it)
			},
		},
	)
	return cmd
}

func (s *Shell) classify() *cobra.Command {
	ro := &options.RiskOptions{}
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify an AI system as low or high risk.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := &classify.Classify{Attributes: ro.Attributes(), JSON: s.JSON, Out: s.out()}
			return c.Do(cmd.Context())
		},
	}
	options.AddRiskArgs(cmd, ro)
	return cmd
}

func (s *Shell) key() *cobra.Command {
	return &cobra.Command{
		Use:   "key",
		Short: "Print the glyph legend.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k := &key.Key{Out: s.out()}
			return k.Do(cmd.Context())
		},
	}
}
