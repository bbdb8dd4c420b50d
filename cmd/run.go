package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/skillswap-app/skillswap/internal/logger"
	"github.com/skillswap-app/skillswap/internal/session"
	"github.com/skillswap-app/skillswap/internal/skills"
)

const (
	MenuMatches = "Smart Matches"
	MenuProfile = "My Profile"
	MenuExit    = "Exit"

	PromptBack = "back"

	ProfileAddOffered    = "Add a skill I can teach"
	ProfileRemoveOffered = "Remove a skill I can teach"
	ProfileAddWanted     = "Add a skill I want to learn"
	ProfileRemoveWanted  = "Remove a skill I want to learn"
	ProfileEditBio       = "Edit bio"

	chatExitCommand = "/back"

	noMatchesMessage = "No matches found. Try adding more skills to your profile!"
)

var errBack = errors.New("back requested")

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive skillswap session",
	Run: func(_ *cobra.Command, _ []string) {
		run()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// run drives the three views of the app from a terminal menu loop.
func run() {
	ctx := context.Background()

	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	zlog.Info("starting skillswap", zap.String("version", version))

	sess := newSession(ctx, config, zlog)

	menu := promptui.Select{
		Label: "Where to?",
		Items: []string{MenuMatches, MenuProfile, MenuExit},
	}

	for {
		_, choice, err := menu.Run()
		if err != nil {
			zlog.Info("exiting", zap.Error(err))
			return
		}

		switch choice {
		case MenuMatches:
			if err := browseMatches(ctx, sess); err != nil && !errors.Is(err, errBack) {
				zlog.Info("exiting", zap.Error(err))
				return
			}
		case MenuProfile:
			if err := editProfile(sess); err != nil && !errors.Is(err, errBack) {
				zlog.Info("exiting", zap.Error(err))
				return
			}
		case MenuExit:
			return
		}
	}
}

// browseMatches runs one fresh ranking query and lets the user open a
// conversation with any of the results.
func browseMatches(ctx context.Context, sess *session.Session) error {
	if !sess.HasMatchBasis() {
		fmt.Println(noMatchesMessage)
		return nil
	}

	fmt.Println("Analyzing skills...")

	matches := sess.RefreshMatches(ctx)
	if len(matches) == 0 {
		fmt.Println(noMatchesMessage)
		return nil
	}

	items := make([]string, 0, len(matches)+1)
	for _, match := range matches {
		items = append(items, fmt.Sprintf("%s - %.0f%% match (%s)", match.User.Name, match.Score, match.Reason))
	}
	items = append(items, PromptBack)

	picker := promptui.Select{
		Label: "Start a conversation?",
		Items: items,
	}

	idx, selected, err := picker.Run()
	if err != nil {
		return err
	}
	if selected == PromptBack {
		return errBack
	}

	return chat(ctx, sess, matches[idx].User.ID)
}

// chat opens (and thereby resets) the conversation with the selected match
// and relays lines until the user types the exit command.
func chat(ctx context.Context, sess *session.Session, matchID string) error {
	conv, err := sess.OpenConversation(matchID)
	if err != nil {
		return err
	}

	user := sess.Profile()
	for _, msg := range conv.History() {
		printMessage(&user, conv.Match(), msg)
	}
	fmt.Printf("(type %s to leave the conversation)\n", chatExitCommand)

	input := promptui.Prompt{Label: "You"}

	for {
		line, err := input.Run()
		if err != nil {
			return err
		}

		if strings.TrimSpace(line) == chatExitCommand {
			return errBack
		}

		reply := conv.Send(ctx, line)
		if reply == nil {
			continue
		}

		user = sess.Profile()
		printMessage(&user, conv.Match(), reply)
	}
}

func printMessage(user, match *skills.UserProfile, msg *skills.Message) {
	name := match.Name
	if msg.SenderID == user.ID {
		name = user.Name
	}
	fmt.Printf("%s: %s\n", name, msg.Text)
}

// editProfile loops over the profile operations until the user backs out.
func editProfile(sess *session.Session) error {
	for {
		profile := sess.Profile()
		printProfile(profile)

		menu := promptui.Select{
			Label: "Manage your profile",
			Items: []string{
				ProfileAddOffered,
				ProfileRemoveOffered,
				ProfileAddWanted,
				ProfileRemoveWanted,
				ProfileEditBio,
				PromptBack,
			},
		}

		_, choice, err := menu.Run()
		if err != nil {
			return err
		}

		switch choice {
		case ProfileAddOffered:
			name, err := askLine("Skill you can teach")
			if err != nil {
				return err
			}
			sess.UpdateProfile(func(p skills.UserProfile) skills.UserProfile {
				return skills.AddOffered(p, name)
			})
		case ProfileRemoveOffered:
			if err := removeOffered(sess, profile); err != nil {
				return err
			}
		case ProfileAddWanted:
			name, err := askLine("Skill you want to learn")
			if err != nil {
				return err
			}
			sess.UpdateProfile(func(p skills.UserProfile) skills.UserProfile {
				return skills.AddWanted(p, name)
			})
		case ProfileRemoveWanted:
			if err := removeWanted(sess, profile); err != nil {
				return err
			}
		case ProfileEditBio:
			bio, err := askLineWithDefault("Bio", profile.Bio)
			if err != nil {
				return err
			}
			sess.UpdateProfile(func(p skills.UserProfile) skills.UserProfile {
				return skills.SetBio(p, bio)
			})
		case PromptBack:
			return errBack
		}
	}
}

func removeOffered(sess *session.Session, profile skills.UserProfile) error {
	if len(profile.SkillsOffered) == 0 {
		fmt.Println("No skills added yet.")
		return nil
	}

	items := make([]string, 0, len(profile.SkillsOffered)+1)
	for _, skill := range profile.SkillsOffered {
		items = append(items, fmt.Sprintf("%s (%s)", skill.Name, skill.Level))
	}
	items = append(items, PromptBack)

	picker := promptui.Select{Label: "Remove which skill?", Items: items}
	idx, selected, err := picker.Run()
	if err != nil {
		return err
	}
	if selected == PromptBack {
		return nil
	}

	skillID := profile.SkillsOffered[idx].ID
	sess.UpdateProfile(func(p skills.UserProfile) skills.UserProfile {
		return skills.RemoveOffered(p, skillID)
	})
	return nil
}

func removeWanted(sess *session.Session, profile skills.UserProfile) error {
	if len(profile.SkillsWanted) == 0 {
		fmt.Println("No interests added yet.")
		return nil
	}

	items := make([]string, 0, len(profile.SkillsWanted)+1)
	items = append(items, profile.SkillsWanted...)
	items = append(items, PromptBack)

	picker := promptui.Select{Label: "Remove which interest?", Items: items}
	_, selected, err := picker.Run()
	if err != nil {
		return err
	}
	if selected == PromptBack {
		return nil
	}

	sess.UpdateProfile(func(p skills.UserProfile) skills.UserProfile {
		return skills.RemoveWanted(p, selected)
	})
	return nil
}

func askLine(label string) (string, error) {
	input := promptui.Prompt{Label: label}
	return input.Run()
}

func askLineWithDefault(label, current string) (string, error) {
	input := promptui.Prompt{Label: label, Default: current}
	return input.Run()
}

func printProfile(p skills.UserProfile) {
	fmt.Printf("\n%s - %s\n", p.Name, p.Bio)

	offered := make([]string, 0, len(p.SkillsOffered))
	for _, skill := range p.SkillsOffered {
		offered = append(offered, fmt.Sprintf("%s (%s)", skill.Name, skill.Level))
	}

	fmt.Printf("Teaches: %s\n", joinOrPlaceholder(offered, "nothing yet"))
	fmt.Printf("Wants: %s\n\n", joinOrPlaceholder(p.SkillsWanted, "nothing yet"))
}

func joinOrPlaceholder(items []string, placeholder string) string {
	if len(items) == 0 {
		return placeholder
	}
	return strings.Join(items, ", ")
}
