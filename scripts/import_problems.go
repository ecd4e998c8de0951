// Problem bank importer.
//
// Reads every JSON file under data/problems/ and upserts its problems into
// the bank. Re-running is safe: existing (title, topic) pairs are skipped.
//
// Usage: go run scripts/import_problems.go
package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/karthi421/skillmutant-backend/internal/config"
	"github.com/karthi421/skillmutant-backend/internal/model"
	"github.com/karthi421/skillmutant-backend/internal/repository"
	"github.com/karthi421/skillmutant-backend/pkg/database"
	"github.com/karthi421/skillmutant-backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

// problemFile is one topic's worth of problems.
type problemFile struct {
	Topic    string `json:"topic"`
	Problems []struct {
		Platform   string `json:"platform"`
		Title      string `json:"title"`
		Difficulty string `json:"difficulty"`
		URL        string `json:"url"`
	} `json:"problems"`
}

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("failed to parse config file: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	topics := repository.NewTopicRepository(db)
	problems := repository.NewProblemRepository(db)

	imported := 0
	err = filepath.Walk("data/problems", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		var file problemFile
		if err := json.Unmarshal(raw, &file); err != nil {
			log.Printf("skipping %s: %v", path, err)
			return nil
		}
		if file.Topic == "" {
			log.Printf("skipping %s: missing topic", path)
			return nil
		}

		if err := topics.CreateIfAbsent(&model.Topic{Name: file.Topic}); err != nil {
			return err
		}
		topic, err := topics.FindByName(file.Topic)
		if err != nil {
			return err
		}

		for _, p := range file.Problems {
			problem := &model.Problem{
				TopicID:    topic.ID,
				Platform:   p.Platform,
				Title:      p.Title,
				Difficulty: p.Difficulty,
				URL:        p.URL,
			}
			if err := problems.CreateIfAbsent(problem); err != nil {
				return err
			}
			imported++
		}

		log.Printf("imported %s (%d problems)", file.Topic, len(file.Problems))
		return nil
	})
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	log.Printf("done, %d problems processed", imported)
}
