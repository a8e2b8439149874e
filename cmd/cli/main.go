package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"healthtrack/client"
)

const usage = `usage: healthtrack <command> [flags]

commands:
  register      create an account and log in
  login         log in and remember the session
  logout        forget the saved session
  today         list today's meals and workouts with the calorie balance
  dashboard     show the server-side daily summary
  profile       show your profile and BMI
  alerts        list recent alerts
  add-food      log a meal
  add-exercise  log a workout
  ai-food       estimate a meal from free text (--log to save it)
  ai-exercise   estimate a workout from free text (--log to save it)

environment:
  HEALTHTRACK_URL      API root (default http://localhost:8080)
  HEALTHTRACK_SESSION  session file (default <config dir>/healthtrack/session.json)
`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return nil
	}

	sessionPath := os.Getenv("HEALTHTRACK_SESSION")
	if sessionPath == "" {
		p, err := client.DefaultSessionPath()
		if err != nil {
			return err
		}
		sessionPath = p
	}
	baseURL := os.Getenv("HEALTHTRACK_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	c, err := client.New(baseURL, client.NewFileSessionStore(sessionPath))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "register":
		return register(ctx, c, rest, out)
	case "login":
		return login(ctx, c, rest, out)
	case "logout":
		if err := c.Logout(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Logged out.")
		return nil
	case "today":
		return today(ctx, c, out)
	case "dashboard":
		return dashboard(ctx, c, out)
	case "profile":
		return profile(ctx, c, out)
	case "alerts":
		return alerts(ctx, c, out)
	case "add-food":
		return addFood(ctx, c, rest, out)
	case "add-exercise":
		return addExercise(ctx, c, rest, out)
	case "ai-food":
		return aiFood(ctx, c, rest, out)
	case "ai-exercise":
		return aiExercise(ctx, c, rest, out)
	case "help", "-h", "--help":
		fmt.Fprint(out, usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q (run with no arguments for help)", cmd)
	}
}

func register(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	var in client.RegisterRequest
	fs.StringVar(&in.Name, "name", "", "display name")
	fs.StringVar(&in.Email, "email", "", "email address")
	fs.StringVar(&in.Password, "password", "", "password")
	fs.StringVar(&in.Gender, "gender", "", "male | female | other")
	fs.IntVar(&in.Age, "age", 0, "age in years")
	fs.Float64Var(&in.Height, "height", 0, "height in cm")
	fs.Float64Var(&in.CurrentWeight, "weight", 0, "current weight in kg")
	fs.Float64Var(&in.TargetWeight, "target", 0, "target weight in kg")
	fs.StringVar(&in.ActivityLevel, "activity", "sedentary", "sedentary | light | moderate | active")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := c.Register(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Welcome, %s! Your daily goal is %d kcal.\n", user.Name, user.CalorieGoal)
	return nil
}

func login(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return errors.New("--email and --password are required")
	}

	user, err := c.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Hi %s, you're on a %d-day streak.\n", user.Name, user.Streak)
	return nil
}

func today(ctx context.Context, c *client.Client, out io.Writer) error {
	foods, exercises, totals, err := c.Today(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MEAL\tKCAL\tP/C/F")
	for _, f := range foods {
		fmt.Fprintf(tw, "%s\t%.0f\t%.0f/%.0f/%.0f\n", f.Name, f.Calories, f.Protein, f.Carbs, f.Fat)
	}
	fmt.Fprintln(tw, "\nWORKOUT\tKCAL\tMIN")
	for _, e := range exercises {
		fmt.Fprintf(tw, "%s\t%.0f\t%.0f\n", e.ActivityName, e.CaloriesBurned, e.DurationMinutes)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nGoal %d + burned %.0f - eaten %.0f = %.0f kcal remaining\n",
		totals.Goal, totals.Burned, totals.Consumed, totals.Remaining)
	return nil
}

func dashboard(ctx context.Context, c *client.Client, out io.Writer) error {
	s, err := c.Dashboard(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s  goal %d  eaten %.0f  burned %.0f  remaining %.0f  streak %d\n",
		s.Date, s.CalorieGoal, s.Consumed, s.Burned, s.Remaining, s.Streak)
	fmt.Fprintf(out, "macros: protein %.0fg  carbs %.0fg  fat %.0fg\n", s.Protein, s.Carbs, s.Fat)
	return nil
}

func profile(ctx context.Context, c *client.Client, out io.Writer) error {
	p, err := c.Profile(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s <%s>\n", p.Name, p.Email)
	fmt.Fprintf(out, "%.0f cm, %.1f kg (target %.1f kg), %s\n", p.Height, p.CurrentWeight, p.TargetWeight, p.ActivityLevel)
	if p.BMI > 0 {
		fmt.Fprintf(out, "BMI %.1f (%s)\n", p.BMI, p.BMICategory)
	}
	fmt.Fprintf(out, "goal %d kcal, streak %d\n", p.CalorieGoal, p.Streak)
	return nil
}

func alerts(ctx context.Context, c *client.Client, out io.Writer) error {
	list, err := c.Alerts(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(out, "No alerts.")
	}
	for _, a := range list {
		fmt.Fprintf(out, "%s  %s\n", a.CreatedAt.Local().Format("Jan 2 15:04"), a.Message)
	}
	return nil
}

func addFood(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("add-food", flag.ContinueOnError)
	var in client.FoodInput
	fs.StringVar(&in.Name, "name", "", "what you ate")
	fs.Float64Var(&in.Calories, "calories", -1, "kcal")
	fs.Float64Var(&in.Protein, "protein", 0, "grams")
	fs.Float64Var(&in.Carbs, "carbs", 0, "grams")
	fs.Float64Var(&in.Fat, "fat", 0, "grams")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if in.Name == "" || in.Calories < 0 {
		return errors.New("--name and --calories are required")
	}

	entry, err := c.AddFood(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Logged %s (%.0f kcal).\n", entry.Name, entry.Calories)
	return nil
}

func addExercise(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("add-exercise", flag.ContinueOnError)
	var in client.ExerciseInput
	fs.StringVar(&in.ActivityName, "name", "", "activity")
	fs.Float64Var(&in.CaloriesBurned, "calories", -1, "kcal burned")
	fs.Float64Var(&in.DurationMinutes, "minutes", -1, "duration in minutes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if in.ActivityName == "" || in.CaloriesBurned < 0 || in.DurationMinutes < 0 {
		return errors.New("--name, --calories and --minutes are required")
	}

	entry, err := c.AddExercise(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Logged %s (%.0f kcal, %.0f min).\n", entry.ActivityName, entry.CaloriesBurned, entry.DurationMinutes)
	return nil
}

func aiFood(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("ai-food", flag.ContinueOnError)
	save := fs.Bool("log", false, "log the combined estimate")
	if err := fs.Parse(args); err != nil {
		return err
	}
	text := strings.Join(fs.Args(), " ")
	if text == "" {
		return errors.New("describe what you ate, e.g. ai-food 2 eggs and toast")
	}

	items, err := c.AnalyzeFood(ctx, text)
	if err != nil {
		return err
	}
	for _, it := range items {
		fmt.Fprintf(out, "%-30s %6.0f kcal  P%.0f C%.0f F%.0f\n", it.Name, it.Calories, it.Protein, it.Carbs, it.Fat)
	}
	if !*save || len(items) == 0 {
		return nil
	}

	entry, err := c.AddFood(ctx, client.CombineFoods(items))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Logged %s (%.0f kcal).\n", entry.Name, entry.Calories)
	return nil
}

func aiExercise(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("ai-exercise", flag.ContinueOnError)
	save := fs.Bool("log", false, "log the combined estimate")
	if err := fs.Parse(args); err != nil {
		return err
	}
	text := strings.Join(fs.Args(), " ")
	if text == "" {
		return errors.New("describe your workout, e.g. ai-exercise 50 pushups")
	}

	items, err := c.AnalyzeExercise(ctx, text)
	if err != nil {
		return err
	}
	for _, it := range items {
		fmt.Fprintf(out, "%-30s %6.0f kcal  %.0f min\n", it.ActivityName, it.CaloriesBurned, it.DurationMinutes)
	}
	if !*save || len(items) == 0 {
		return nil
	}

	entry, err := c.AddExercise(ctx, client.CombineExercises(items))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Logged %s (%.0f kcal, %.0f min).\n", entry.ActivityName, entry.CaloriesBurned, entry.DurationMinutes)
	return nil
}
