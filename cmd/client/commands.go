package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/vedicas-garden/internal/client"
	"github.com/MKhiriev/vedicas-garden/internal/config"
	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/internal/service"
	"github.com/MKhiriev/vedicas-garden/internal/tui"
	"github.com/MKhiriev/vedicas-garden/models"
)

const passwordEnv = "VEDICAS_PASSWORD"

var configPath string

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "vedicas",
		Short:         "Chat with your Vedic gurus and tend your garden",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, app *client.App, log *logger.Logger) error {
				return app.Run(ctx, tui.New(app.Services(), log))
			})
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a JSON or YAML config file")

	root.AddCommand(
		newAuthCommand("register", "Create an account and upload local data"),
		newAuthCommand("login", "Sign in and download your data"),
		newLogoutCommand(),
		newProfileCommand(),
		newSyncCommand(),
		newChartCommand(),
		newAlignmentCommand(),
		newSeedsCommand(),
		newCheckinCommand(),
		newVersionCommand(),
	)
	return root
}

// withApp loads the client config, opens the app for the duration of fn
// and closes it afterwards.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, app *client.App, log *logger.Logger) error) error {
	cfg, err := config.GetClientConfig(configPath)
	if err != nil {
		return err
	}

	log := logger.NewClientLogger("vedicas-client", cfg.Log.Level, cfg.Log.File)
	ctx := log.WithContext(cmd.Context())

	app, err := client.NewApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := app.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("close app")
		}
	}()

	return fn(ctx, app, log)
}

func newAuthCommand(use, short string) *cobra.Command {
	var login, password string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				password = os.Getenv(passwordEnv)
			}
			return withApp(cmd, func(ctx context.Context, app *client.App, _ *logger.Logger) error {
				auth := app.Services().AuthService
				signIn := auth.Login
				if use == "register" {
					signIn = auth.Register
				}

				session, err := signIn(ctx, login, password)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", session.Login)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&login, "login", "l", "", "account login")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (or "+passwordEnv+")")
	_ = cmd.MarkFlagRequired("login")
	return cmd
}

func newLogoutCommand() *cobra.Command {
	var wipe bool

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Upload local data and forget the saved session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, app *client.App, _ *logger.Logger) error {
				if err := signOut(ctx, app.Services(), wipe); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&wipe, "wipe", false, "also erase all local data")
	return cmd
}

// signOut pushes and forgets the session. With wipe the local snapshot is
// erased afterwards, so the next account starts empty.
func signOut(ctx context.Context, services *service.ClientServices, wipe bool) error {
	if err := services.AuthService.SignOut(ctx); err != nil {
		return err
	}
	if !wipe {
		return nil
	}
	if err := services.State.Reset(ctx); err != nil {
		return fmt.Errorf("error wiping local data: %w", err)
	}
	return nil
}

type profileFlags struct {
	name, gender, profession, relationship, orientation, birthPlace string
}

func newProfileCommand() *cobra.Command {
	var f profileFlags

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Update the personal details your gurus see",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, app *client.App, _ *logger.Logger) error {
				if err := applyProfile(ctx, app.Services().State, f); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Profile saved")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&f.name, "name", "", "your name")
	cmd.Flags().StringVar(&f.gender, "gender", "", "gender")
	cmd.Flags().StringVar(&f.profession, "profession", "", "profession")
	cmd.Flags().StringVar(&f.relationship, "relationship", "", "relationship status")
	cmd.Flags().StringVar(&f.orientation, "orientation", "", "sexual orientation, kept on this device only")
	cmd.Flags().StringVar(&f.birthPlace, "birth-place", "", "birth place")
	return cmd
}

// applyProfile patches only the fields that were given.
func applyProfile(ctx context.Context, state *service.LocalState, f profileFlags) error {
	p := models.Profile{
		Name:               strings.TrimSpace(f.name),
		Gender:             strings.TrimSpace(f.gender),
		Profession:         strings.TrimSpace(f.profession),
		RelationshipStatus: strings.TrimSpace(f.relationship),
		BirthPlace:         strings.TrimSpace(f.birthPlace),
	}
	orientation := strings.TrimSpace(f.orientation)
	if p.IsEmpty() && orientation == "" {
		return errors.New("nothing to update: pass at least one flag")
	}

	if !p.IsEmpty() {
		if err := state.UpdateProfile(ctx, p); err != nil {
			return err
		}
	}
	if orientation != "" {
		return state.SetSexualOrientation(ctx, orientation)
	}
	return nil
}

func newSyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Upload local data, then download remote data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, app *client.App, _ *logger.Logger) error {
				svcs := app.Services()
				if !svcs.AuthService.Authenticated() {
					return service.ErrNotAuthenticated
				}
				if !svcs.SyncService.Push(ctx) {
					return errors.New("push failed, see the log for details")
				}
				svcs.SyncService.ResetPullGuard()
				if err := svcs.SyncService.Pull(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Synced")
				return nil
			})
		},
	}
}

func newChartCommand() *cobra.Command {
	var birth models.BirthData

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Calculate and store your birth chart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, app *client.App, _ *logger.Logger) error {
				svcs := app.Services()
				if birth.Date != "" {
					if err := svcs.AstroService.CalculateBirthChart(ctx, birth); err != nil {
						return err
					}
				}

				snap := svcs.State.Snapshot()
				if snap.Chart == nil {
					return service.ErrNoBirthData
				}
				fmt.Fprint(cmd.OutOrStdout(), service.FormatChartAsText(snap.Chart, snap.Dasha))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&birth.Date, "date", "", "birth date, YYYY-MM-DD")
	cmd.Flags().StringVar(&birth.Time, "time", "12:00", "birth time, HH:MM")
	cmd.Flags().Float64Var(&birth.Latitude, "lat", 0, "birth place latitude")
	cmd.Flags().Float64Var(&birth.Longitude, "lon", 0, "birth place longitude")
	return cmd
}

func newAlignmentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "alignment",
		Short: "Show today's panchang at your birth place",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, app *client.App, _ *logger.Logger) error {
				a, err := app.Services().AstroService.Alignment(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Tithi: %s (%d)\n", a.Tithi.Name, a.Tithi.Number)
				fmt.Fprintf(out, "Moon nakshatra: %s\n", a.MoonNakshatra.Name)
				fmt.Fprintf(out, "Ekadashi: %s\n", service.EkadashiStatus(a.Tithi.Number))
				return nil
			})
		},
	}
}

func newSeedsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seeds",
		Short: "List your seeds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(_ context.Context, app *client.App, _ *logger.Logger) error {
				svcs := app.Services()
				out := cmd.OutOrStdout()
				for _, s := range svcs.State.Snapshot().Seeds {
					fmt.Fprintf(out, "%s  %-30s %-10s streak %d\n", s.ClientSideID, s.Title, s.Difficulty, s.Streak)
				}
				st := svcs.GardenService.Stats()
				fmt.Fprintf(out, "\n%d seeds, %d watered today, %d points\n", st.Seeds, st.WateredToday, st.Points)
				return nil
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "water <client-side-id>",
		Short: "Mark a seed as done today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *client.App, _ *logger.Logger) error {
				seed, err := app.Services().GardenService.WaterSeed(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s watered, streak %d\n", seed.Title, seed.Streak)
				return nil
			})
		},
	})
	return cmd
}

func newCheckinCommand() *cobra.Command {
	var mood, energy, focus int
	var gratitude, notes string

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Record today's check-in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := models.Checkin{}
			if cmd.Flags().Changed("mood") {
				c.Mood = &mood
			}
			if cmd.Flags().Changed("energy") {
				c.Energy = &energy
			}
			if cmd.Flags().Changed("focus") {
				c.Focus = &focus
			}
			if g := strings.TrimSpace(gratitude); g != "" {
				c.Gratitude = &g
			}
			if n := strings.TrimSpace(notes); n != "" {
				c.Notes = &n
			}

			return withApp(cmd, func(ctx context.Context, app *client.App, _ *logger.Logger) error {
				saved, err := app.Services().GardenService.DailyCheckin(ctx, c)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Check-in saved for %s\n", saved.Date)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&mood, "mood", 0, "mood, 1 to 10")
	cmd.Flags().IntVar(&energy, "energy", 0, "energy, 1 to 10")
	cmd.Flags().IntVar(&focus, "focus", 0, "focus, 1 to 10")
	cmd.Flags().StringVar(&gratitude, "gratitude", "", "what you are grateful for")
	cmd.Flags().StringVar(&notes, "notes", "", "free notes")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			models.NewBuildInfo(buildVersion, buildDate, buildCommit).Print(out)
		},
	}
}
