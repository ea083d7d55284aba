package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"lbtui/internal/bootstrap"
	admindto "lbtui/internal/modules/admin/dto"
	"lbtui/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "lbtui",
		Short:         "LearnBuddy terminal client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.lbtui/config.yaml)")

	root.AddCommand(newTUICmd(&configPath))
	root.AddCommand(newLoginCmd(&configPath))
	root.AddCommand(newSignupCmd(&configPath))
	root.AddCommand(newLogoutCmd(&configPath))
	root.AddCommand(newWhoamiCmd(&configPath))
	root.AddCommand(newPracticeCmd(&configPath))
	root.AddCommand(newStatsCmd(&configPath))
	root.AddCommand(newQuestCmd(&configPath))
	root.AddCommand(newAchievementsCmd(&configPath))
	root.AddCommand(newProfileCmd(&configPath))
	root.AddCommand(newHistoryCmd(&configPath))
	root.AddCommand(newAdminCmd(&configPath))
	return root
}

func loadApp(configPath string) (*bootstrap.App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

// promptPassword reads the password from stdin when the flag is not given,
// so the secret stays out of shell history.
func promptPassword(password string) (string, error) {
	if password != "" {
		return password, nil
	}
	_, _ = fmt.Fprint(os.Stderr, "password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func newTUICmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the LearnBuddy terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			return bootstrap.RunTUI(app)
		},
	}
}

func newLoginCmd(configPath *string) *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Log in and store the session credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			pass, err := promptPassword(password)
			if err != nil {
				return err
			}
			session, err := app.AuthCLI.Login(context.Background(), args[0], pass)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s\n", session.Username)
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	return cmd
}

func newSignupCmd(configPath *string) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "signup <username>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(email) == "" {
				return fmt.Errorf("--email is required")
			}
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			pass, err := promptPassword(password)
			if err != nil {
				return err
			}
			out, err := app.AuthCLI.Signup(context.Background(), args[0], email, pass)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "account created: %s (log in to start)\n", out.Username)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	return cmd
}

func newLogoutCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session credential",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if err := app.AuthCLI.Logout(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newWhoamiCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the locally stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			session, err := app.AuthCLI.Session(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), session.Username)
			return nil
		},
	}
}

func newPracticeCmd(configPath *string) *cobra.Command {
	practice := &cobra.Command{Use: "practice", Short: "Practice questions"}

	practice.AddCommand(&cobra.Command{
		Use:   "next",
		Short: "Fetch the next question",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			q, err := app.PracticeCLI.Next(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[level %d] %s\n", q.Difficulty, q.Text)
			return nil
		},
	})

	practice.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the question currently awaiting an answer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			q, err := app.PracticeCLI.Current(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[level %d] %s\n", q.Difficulty, q.Text)
			return nil
		},
	})

	practice.AddCommand(&cobra.Command{
		Use:   "answer <text>...",
		Short: "Answer the current question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.PracticeCLI.Answer(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if !out.Submitted {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "nothing to submit (fetch a question first)")
				return nil
			}
			verdict := "incorrect"
			if out.Correct {
				verdict = "correct"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (similarity %d%%)\n", verdict, out.SimilarityPct)
			if out.QuestCompleted {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "quest complete!")
			}
			return nil
		},
	})

	practice.AddCommand(&cobra.Command{
		Use:   "skip",
		Short: "Discard the current question and fetch a fresh one",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			q, err := app.PracticeCLI.Next(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[level %d] %s\n", q.Difficulty, q.Text)
			return nil
		},
	})

	return practice
}

func newStatsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show XP and streak",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			stats, err := app.ProgressCLI.Stats(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "xp=%d streak=%d", stats.XP, stats.StreakCount)
			if !stats.LastLogin.IsZero() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), " last_login=%s", stats.LastLogin.Format("2006-01-02"))
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}

func newQuestCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "quest",
		Short: "Show today's quest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			quest, err := app.ProgressCLI.Quest(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s — %s\n", quest.Title, quest.Description)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "progress %d/%d (%d%%)", quest.Progress, quest.Target, quest.Percent)
			if quest.Completed {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), " complete")
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}

func newAchievementsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "List unlocked achievements",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			achievements, err := app.ProgressCLI.Achievements(context.Background())
			if err != nil {
				return err
			}
			if len(achievements) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no achievements yet")
				return nil
			}
			for _, a := range achievements {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s", a.Name, a.Description)
				if !a.UnlockedAt.IsZero() {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\t%s", a.UnlockedAt.Format("2006-01-02"))
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}
}

func newProfileCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show account, stats and achievements",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			profile, err := app.ProgressCLI.Profile(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", profile.Username, profile.Email)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "xp=%d streak=%d\n", profile.Stats.XP, profile.Stats.StreakCount)
			for _, a := range profile.Achievements {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "★ %s — %s\n", a.Name, a.Description)
			}
			return nil
		},
	}
}

func newHistoryCmd(configPath *string) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent answers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			turns, err := app.PracticeCLI.Recent(context.Background(), limit)
			if err != nil {
				return err
			}
			if len(turns) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no answers recorded yet")
				return nil
			}
			for _, t := range turns {
				mark := "✘"
				if t.Correct {
					mark = "✔"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%q\t%d%%\t%s\n",
					mark, t.QuestionText, t.Answer, t.SimilarityPct, t.AnsweredAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "turns to show")
	return cmd
}

func newAdminCmd(configPath *string) *cobra.Command {
	admin := &cobra.Command{Use: "admin", Short: "Administrative operations"}

	var password string
	login := &cobra.Command{
		Use:   "login <username>",
		Short: "Log in with an elevated credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			pass, err := promptPassword(password)
			if err != nil {
				return err
			}
			session, err := app.AdminCLI.Login(context.Background(), args[0], pass)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "admin session for %s\n", session.Username)
			return nil
		},
	}
	login.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	admin.AddCommand(login)

	admin.AddCommand(&cobra.Command{
		Use:   "logout",
		Short: "Discard the admin credential",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if err := app.AdminCLI.Logout(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "admin logged out")
			return nil
		},
	})

	admin.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show platform totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			overview, err := app.AdminCLI.Overview(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "users=%d questions=%d answers=%d\n",
				overview.TotalUsers, overview.TotalQuestions, overview.TotalAnswersSubmitted)
			for level, count := range overview.QuestionsByDifficulty {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "level %d: %d question(s)\n", level, count)
			}
			return nil
		},
	})

	admin.AddCommand(newAdminUsersCmd(configPath))
	admin.AddCommand(newAdminQuestionsCmd(configPath))
	return admin
}

func newAdminUsersCmd(configPath *string) *cobra.Command {
	users := &cobra.Command{Use: "users", Short: "Manage users"}

	users.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			list, err := app.AdminCLI.Users(context.Background())
			if err != nil {
				return err
			}
			for _, u := range list {
				role := "user"
				if u.IsAdmin {
					role = "admin"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\txp=%d\t%s\n", u.ID, u.Username, u.Email, u.XP, role)
			}
			return nil
		},
	})

	var getID int64
	get := &cobra.Command{
		Use:   "get --id <id>",
		Short: "Show one user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			u, err := app.AdminCLI.User(context.Background(), getID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "id=%d username=%s email=%s xp=%d admin=%t\n",
				u.ID, u.Username, u.Email, u.XP, u.IsAdmin)
			return nil
		},
	}
	get.Flags().Int64Var(&getID, "id", 0, "user id")
	users.AddCommand(get)

	var addInput admindto.UserInput
	add := &cobra.Command{
		Use:   "add --username <name> --email <email> --password <pass>",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			u, err := app.AdminCLI.CreateUser(context.Background(), addInput)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created user %d (%s)\n", u.ID, u.Username)
			return nil
		},
	}
	add.Flags().StringVar(&addInput.Username, "username", "", "username")
	add.Flags().StringVar(&addInput.Email, "email", "", "email")
	add.Flags().StringVar(&addInput.Password, "password", "", "password")
	add.Flags().Int64Var(&addInput.XP, "xp", 0, "starting xp")
	add.Flags().BoolVar(&addInput.IsAdmin, "is-admin", false, "grant admin role")
	users.AddCommand(add)

	var updateID int64
	var updateInput admindto.UserInput
	update := &cobra.Command{
		Use:   "update --id <id>",
		Short: "Update a user (blank password keeps the current one)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			u, err := app.AdminCLI.UpdateUser(context.Background(), updateID, updateInput)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated user %d (%s)\n", u.ID, u.Username)
			return nil
		},
	}
	update.Flags().Int64Var(&updateID, "id", 0, "user id")
	update.Flags().StringVar(&updateInput.Username, "username", "", "username")
	update.Flags().StringVar(&updateInput.Email, "email", "", "email")
	update.Flags().StringVar(&updateInput.Password, "password", "", "new password (optional)")
	update.Flags().Int64Var(&updateInput.XP, "xp", 0, "xp")
	update.Flags().BoolVar(&updateInput.IsAdmin, "is-admin", false, "grant admin role")
	users.AddCommand(update)

	var deleteID int64
	del := &cobra.Command{
		Use:   "delete --id <id>",
		Short: "Delete a user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if err := app.AdminCLI.DeleteUser(context.Background(), deleteID); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted user %d\n", deleteID)
			return nil
		},
	}
	del.Flags().Int64Var(&deleteID, "id", 0, "user id")
	users.AddCommand(del)

	return users
}

func newAdminQuestionsCmd(configPath *string) *cobra.Command {
	questions := &cobra.Command{Use: "questions", Short: "Manage questions"}

	questions.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List questions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			list, err := app.AdminCLI.Questions(context.Background())
			if err != nil {
				return err
			}
			for _, q := range list {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t[level %d, lesson %d]\t%s\n", q.ID, q.Difficulty, q.LessonID, q.Text)
			}
			return nil
		},
	})

	var addInput admindto.QuestionInput
	add := &cobra.Command{
		Use:   "add --text <q> --answer <a>",
		Short: "Create a question",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			q, err := app.AdminCLI.CreateQuestion(context.Background(), addInput)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created question %d\n", q.ID)
			return nil
		},
	}
	add.Flags().StringVar(&addInput.Text, "text", "", "question text")
	add.Flags().StringVar(&addInput.CorrectAnswer, "answer", "", "correct answer")
	add.Flags().IntVar(&addInput.Difficulty, "difficulty", 1, "difficulty level")
	add.Flags().Int64Var(&addInput.LessonID, "lesson", 1, "lesson id")
	questions.AddCommand(add)

	var updateID int64
	var updateInput admindto.QuestionInput
	update := &cobra.Command{
		Use:   "update --id <id>",
		Short: "Update a question",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			q, err := app.AdminCLI.UpdateQuestion(context.Background(), updateID, updateInput)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated question %d\n", q.ID)
			return nil
		},
	}
	update.Flags().Int64Var(&updateID, "id", 0, "question id")
	update.Flags().StringVar(&updateInput.Text, "text", "", "question text")
	update.Flags().StringVar(&updateInput.CorrectAnswer, "answer", "", "correct answer")
	update.Flags().IntVar(&updateInput.Difficulty, "difficulty", 1, "difficulty level")
	update.Flags().Int64Var(&updateInput.LessonID, "lesson", 1, "lesson id")
	questions.AddCommand(update)

	var deleteID int64
	del := &cobra.Command{
		Use:   "delete --id <id>",
		Short: "Delete a question",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if err := app.AdminCLI.DeleteQuestion(context.Background(), deleteID); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted question %d\n", deleteID)
			return nil
		},
	}
	del.Flags().Int64Var(&deleteID, "id", 0, "question id")
	questions.AddCommand(del)

	return questions
}
