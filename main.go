package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"postboard/app/board"
	"postboard/app/controllers"
	"postboard/app/repositories"
	"postboard/app/routes"
	"postboard/app/services"
	"postboard/config"
	"postboard/demoapi"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("postboard version %s\n", cliVersion)
	case "serve":
		serve()
	case "demo":
		demo()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: postboard <command>
Commands:
  help      Display this help message.
  version   Show version information.
  serve     Run the web frontend against the configured demo API.
  demo      Run the bundled stand-in API (Badger-backed, seeded).

Configuration comes from the environment or a .env file:
  POSTBOARD_ADDR        frontend listen address   (default :8080)
  POSTBOARD_API_URL     demo API base URL         (default https://jsonplaceholder.typicode.com)
  POSTBOARD_PAGE_SIZE   listing page size         (default 10)
  POSTBOARD_DEMO_ADDR   stand-in API address      (default :8081)
  POSTBOARD_DEMO_DIR    stand-in API data dir     (default data/badger)
`
	fmt.Println(helpText)
}

// serve runs the web frontend against the configured demo API.
func serve() {
	cfg := config.Load()

	postRepo := repositories.NewHTTPPostRepository(cfg.APIBaseURL, nil)
	commentRepo := repositories.NewHTTPCommentRepository(cfg.APIBaseURL, nil)

	postService := services.NewPostService(postRepo)
	commentService := services.NewCommentService(commentRepo)
	b := board.New(cfg.PageSize)

	postController := controllers.NewPostController(postService, commentService, b, "")
	commentController := controllers.NewCommentController(commentService, "")

	handler := routes.SetupRoutes(postController, commentController)

	log.Printf("postboard frontend on %s, talking to %s", cfg.Addr, cfg.APIBaseURL)
	if err := routes.StartServer(cfg.Addr, handler); err != nil {
		log.Fatalf("Frontend server error: %v", err)
	}
}

// demo runs the bundled stand-in API so everything works offline.
func demo() {
	cfg := config.Load()

	store, err := demoapi.OpenStore(cfg.DemoDataDir)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	if err := demoapi.Seed(store); err != nil {
		log.Fatalf("Failed to seed store: %v", err)
	}

	server := demoapi.NewServer(store)
	log.Printf("stand-in demo API on %s (data in %s)", cfg.DemoAddr, cfg.DemoDataDir)
	if err := routes.StartServer(cfg.DemoAddr, server.Router()); err != nil {
		log.Fatalf("Demo API server error: %v", err)
	}
}
