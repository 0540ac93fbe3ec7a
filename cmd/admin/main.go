// Command admin runs one-off maintenance tasks against the database:
//
//	admin migrate    apply the schema
//	admin seed       apply the schema and load demo data
//
// Seeding is idempotent; records are matched by name or title.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"workbench/backend/internal/config"
	"workbench/backend/internal/logging"
	"workbench/backend/internal/models"
)

func main() {
	logging.InitLogger()
	defer logging.Logger.Sync()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: admin <migrate|seed>")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Logger.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN()), &gorm.Config{})
	if err != nil {
		logging.Logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := migrate(db); err != nil {
		logging.Logger.Fatal("migration failed", zap.Error(err))
	}

	switch os.Args[1] {
	case "migrate":
		logging.Logger.Info("schema migrated")
	case "seed":
		if err := seed(db); err != nil {
			logging.Logger.Fatal("seeding failed", zap.Error(err))
		}
		logging.Logger.Info("database seeded")
	default:
		fmt.Fprintln(os.Stderr, "usage: admin <migrate|seed>")
		os.Exit(2)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.ChatMessage{},
		&models.Project{},
		&models.Campaign{},
		&models.Task{},
		&models.Product{},
		&models.Item{},
		&models.GalleryImage{},
	)
}

type seedTask struct {
	Title     string
	Completed bool
}

var seedProjects = []struct {
	Name        string
	Description string
	Status      string
	Tasks       []seedTask
}{
	{
		Name:        "Website Redesign",
		Description: "Refresh the marketing site with the new brand.",
		Status:      "active",
		Tasks: []seedTask{
			{"Audit existing pages", true},
			{"Draft new wireframes", true},
			{"Review color palette", false},
			{"Build landing page", false},
			{"Run accessibility pass", false},
		},
	},
	{
		Name:        "Mobile App",
		Description: "Ship the companion app for iOS and Android.",
		Status:      "planning",
		Tasks: []seedTask{
			{"Define MVP feature set", true},
			{"Pick cross-platform framework", false},
			{"Set up CI pipeline", false},
			{"Design onboarding flow", false},
			{"Prepare store listings", false},
		},
	},
	{
		Name:        "Data Migration",
		Description: "Move the legacy warehouse to the new cluster.",
		Status:      "on_hold",
		Tasks: []seedTask{
			{"Inventory source tables", true},
			{"Write extraction jobs", true},
			{"Validate row counts", false},
			{"Dry-run the cutover", false},
			{"Schedule the cutover window", false},
		},
	},
	{
		Name:        "Q4 Launch",
		Description: "Everything needed for the autumn release.",
		Status:      "completed",
		Tasks: []seedTask{
			{"Freeze the feature list", true},
			{"Finish release notes", true},
			{"Brief the support team", true},
			{"Tag the release", true},
			{"Publish the announcement", true},
		},
	},
}

var seedStandaloneTasks = []seedTask{
	{"Renew TLS certificates", false},
	{"Clean up stale branches", false},
	{"Update team handbook", true},
}

var seedCampaigns = []struct {
	Name        string
	Description string
	Status      string
	Tasks       []seedTask
}{
	{
		Name:        "Spring Newsletter",
		Description: "Quarterly mailing to the customer list.",
		Status:      "active",
		Tasks: []seedTask{
			{"Collect product updates", true},
			{"Write the copy", false},
			{"Schedule the send", false},
		},
	},
	{
		Name:        "Conference Booth",
		Description: "Presence at the developer conference.",
		Status:      "planning",
		Tasks: []seedTask{
			{"Book the booth", false},
			{"Order swag", false},
		},
	},
}

var seedProducts = []struct {
	Name        string
	Description string
	Status      string
	Items       []seedTask
}{
	{
		Name:        "Starter Kit",
		Description: "Everything a new customer needs on day one.",
		Status:      "active",
		Items: []seedTask{
			{"Write quickstart guide", true},
			{"Record demo video", false},
			{"Bundle sample data", false},
		},
	},
	{
		Name:        "Pro Tier",
		Description: "Feature set for the paid plan.",
		Status:      "planning",
		Items: []seedTask{
			{"Define usage limits", false},
			{"Design billing page", false},
		},
	},
}

func seed(db *gorm.DB) error {
	for _, sp := range seedProjects {
		project := models.Project{Name: sp.Name, Description: sp.Description, Status: sp.Status}
		if err := db.Where(models.Project{Name: sp.Name}).FirstOrCreate(&project).Error; err != nil {
			return err
		}
		for _, st := range sp.Tasks {
			task := models.Task{Title: st.Title, Completed: st.Completed, ProjectID: &project.ID}
			if err := db.Where(models.Task{Title: st.Title, ProjectID: &project.ID}).FirstOrCreate(&task).Error; err != nil {
				return err
			}
		}
	}

	for _, st := range seedStandaloneTasks {
		task := models.Task{Title: st.Title, Completed: st.Completed}
		if err := db.Where("title = ? AND project_id IS NULL AND campaign_id IS NULL", st.Title).
			FirstOrCreate(&task).Error; err != nil {
			return err
		}
	}

	for _, sc := range seedCampaigns {
		campaign := models.Campaign{Name: sc.Name, Description: sc.Description, Status: sc.Status}
		if err := db.Where(models.Campaign{Name: sc.Name}).FirstOrCreate(&campaign).Error; err != nil {
			return err
		}
		for _, st := range sc.Tasks {
			task := models.Task{Title: st.Title, Completed: st.Completed, CampaignID: &campaign.ID}
			if err := db.Where(models.Task{Title: st.Title, CampaignID: &campaign.ID}).FirstOrCreate(&task).Error; err != nil {
				return err
			}
		}
	}

	for _, sp := range seedProducts {
		product := models.Product{Name: sp.Name, Description: sp.Description, Status: sp.Status}
		if err := db.Where(models.Product{Name: sp.Name}).FirstOrCreate(&product).Error; err != nil {
			return err
		}
		for _, si := range sp.Items {
			item := models.Item{Title: si.Title, Completed: si.Completed, ProductID: product.ID}
			if err := db.Where(models.Item{Title: si.Title, ProductID: product.ID}).FirstOrCreate(&item).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
