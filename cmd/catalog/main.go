package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/yigit/unitutor/internal/app/repositories"
	"github.com/yigit/unitutor/internal/app/services"
	"github.com/yigit/unitutor/internal/config"
	"github.com/yigit/unitutor/internal/db"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so deferred cleanup runs before exiting
func run(args []string) int {
	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	configPath := fs.String("config", "configs/config.yaml", "path to the YAML configuration file")
	listSubjects := fs.Bool("subjects", false, "list all subjects")
	subjectURL := fs.String("subject", "", "show a subject and the professors teaching it")
	listSessions := fs.Bool("sessions", false, "list requested instruction sessions")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if !*listSubjects && *subjectURL == "" && !*listSessions {
		fs.Usage()
		return 2
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		color.Red("Error loading configuration: %v", err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		color.Red("Error connecting to database: %v", err)
		return 1
	}
	defer database.Close()

	repos := repositories.NewRepositories(database.Pool)
	subjectService := services.NewSubjectService(repos.SubjectRepository, repos.UserRepository, nil, zerolog.Nop())
	instructionService := services.NewInstructionService(repos.InstructionSessionRepository, repos.UserRepository, nil, zerolog.Nop())

	failed := false

	if *listSubjects {
		resp, err := subjectService.GetAllSubjects(ctx)
		if err != nil {
			color.Red("Error fetching subjects: %v", err)
			failed = true
		} else {
			color.Yellow("\nSubjects")
			renderSubjects(os.Stdout, resp.Subjects)
		}
	}

	if *subjectURL != "" {
		resp, err := subjectService.GetSubjectByURL(ctx, *subjectURL)
		if err != nil {
			color.Red("Error fetching subject %q: %v", *subjectURL, err)
			failed = true
		} else {
			color.Yellow("\n%s (%s)", resp.Subject.Title, resp.Subject.URL)
			color.Cyan("%s", resp.Subject.Description)
			renderProfessors(os.Stdout, resp.Professors)
		}
	}

	if *listSessions {
		resp, err := instructionService.ListSessions(ctx)
		if err != nil {
			color.Red("Error fetching instruction sessions: %v", err)
			failed = true
		} else {
			color.Yellow("\nRequested Instruction Sessions")
			renderSessions(os.Stdout, resp.InstructionSessions)
		}
	}

	if failed {
		return 1
	}
	return 0
}
