package utils

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var testMongoURI string

func init() {
	loadTestEnv()
}

// loadTestEnv loads the .env file and reads the test MongoDB URI.
func loadTestEnv() {
	// Try to load .env from the project root (2 levels up from this file)
	_, filename, _, _ := runtime.Caller(0)
	projectRoot := filepath.Join(filepath.Dir(filename), "..", "..")
	if err := godotenv.Load(filepath.Join(projectRoot, ".env")); err != nil {
		godotenv.Load()
	}

	testMongoURI = os.Getenv("MONGO_URI")
}

// SetupTestDB connects to the test MongoDB instance and returns the named
// database with the given collections dropped for a clean state. Tests that
// need a live database are skipped when MONGO_URI is not set.
func SetupTestDB(t *testing.T, dbName string, collections ...string) *mongo.Database {
	t.Helper()
	if testMongoURI == "" {
		t.Skip("MONGO_URI not set; skipping database test")
	}

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(testMongoURI))
	require.NoError(t, err, "Failed to connect to MongoDB")
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	db := client.Database(dbName)
	for _, collection := range collections {
		_ = db.Collection(collection).Drop(context.Background())
	}

	return db
}
