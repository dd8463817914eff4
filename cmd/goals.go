package cmd

import (
	"fmt"
	"strconv"
	"time"

	"wealthwise/internal/cli"
	"wealthwise/internal/metrics"
	"wealthwise/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "List financial goals",
	RunE:  runGoalsList,
}

var goalsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a goal",
	RunE:  runGoalsAdd,
}

var goalsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a goal's saved amount",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalsUpdate,
}

var goalsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalsRm,
}

func init() {
	goalsCmd.AddCommand(goalsAddCmd)
	goalsCmd.AddCommand(goalsUpdateCmd)
	goalsCmd.AddCommand(goalsRmCmd)
	rootCmd.AddCommand(goalsCmd)
}

func runGoalsList(_ *cobra.Command, _ []string) error {
	s, sn, err := loadRecords()
	if err != nil {
		return err
	}
	defer sn.Close()

	goals := s.Goals()
	if len(goals) == 0 {
		fmt.Println("\n  No goals yet. Add one with `wealthwise goals add`.")
		return nil
	}

	now := time.Now()
	categories, byCategory := metrics.GroupGoals(goals)

	fmt.Println()
	for _, cat := range categories {
		fmt.Println(cli.Header("  " + cat))
		for _, g := range byCategory[cat] {
			progress := metrics.GoalProgress(g)
			fmt.Printf("  %s  %s\n", g.Name, cli.Muted("("+g.ID+")"))
			fmt.Printf("    %s\n", cli.RenderMeter(progress/100, 30))
			fmt.Printf("    %s of %s · %s left · save %s/mo\n",
				cli.FormatMoney(g.CurrentAmount),
				cli.FormatMoney(g.TargetAmount),
				cli.FormatDays(metrics.DaysRemaining(g, now)),
				cli.FormatMoney(metrics.MonthlyNeeded(g, now)),
			)
		}
		fmt.Println()
	}

	return nil
}

func runGoalsAdd(_ *cobra.Command, _ []string) error {
	s, sn, err := loadRecords()
	if err != nil {
		return err
	}
	defer sn.Close()

	var name, category, targetStr, currentStr, deadlineStr string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Goal name").Value(&name).Validate(validateRequired),
		huh.NewInput().Title("Category").Value(&category).Validate(validateRequired),
		huh.NewInput().Title("Target amount").Value(&targetStr).Validate(validateAmount),
		huh.NewInput().Title("Saved so far").Value(&currentStr).Validate(validateAmount),
		huh.NewInput().Title("Deadline (YYYY-MM-DD)").Value(&deadlineStr).Validate(validateDate),
	))
	if err := form.Run(); err != nil {
		return err
	}

	target, _ := parseAmount(targetStr)
	current, _ := parseAmount(currentStr)
	deadline, _ := parseDateInput(deadlineStr)

	s.AddGoal(model.Goal{
		ID:            strconv.FormatInt(time.Now().UnixMilli(), 10),
		Name:          name,
		Category:      category,
		TargetAmount:  target,
		CurrentAmount: current,
		Deadline:      deadline,
	})
	if err := saveRecords(s, sn); err != nil {
		return err
	}

	fmt.Printf("\n  Added goal %q.\n\n", name)
	return nil
}

func runGoalsUpdate(_ *cobra.Command, args []string) error {
	s, sn, err := loadRecords()
	if err != nil {
		return err
	}
	defer sn.Close()

	id := args[0]
	var target *model.Goal
	for _, g := range s.Goals() {
		if g.ID == id {
			goal := g
			target = &goal
			break
		}
	}
	if target == nil {
		return fmt.Errorf("no goal with id %q", id)
	}

	currentStr := amountString(target.CurrentAmount)
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(fmt.Sprintf("Saved so far for %q", target.Name)).
			Value(&currentStr).
			Validate(validateAmount),
	))
	if err := form.Run(); err != nil {
		return err
	}

	target.CurrentAmount, _ = parseAmount(currentStr)
	s.UpdateGoal(id, *target)
	if err := saveRecords(s, sn); err != nil {
		return err
	}

	fmt.Printf("\n  %s is now %.0f%% funded.\n\n", target.Name, metrics.GoalProgress(*target))
	return nil
}

func runGoalsRm(_ *cobra.Command, args []string) error {
	s, sn, err := loadRecords()
	if err != nil {
		return err
	}
	defer sn.Close()

	id := args[0]
	before := len(s.Goals())
	s.DeleteGoal(id)
	if len(s.Goals()) == before {
		return fmt.Errorf("no goal with id %q", id)
	}

	if err := saveRecords(s, sn); err != nil {
		return err
	}

	fmt.Println("\n  Goal deleted.")
	return nil
}
