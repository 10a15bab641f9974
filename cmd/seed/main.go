package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"account_backend/internal/feature/account/adapters"
	"account_backend/internal/feature/account/domain/entity"
	infradb "account_backend/internal/platform/db"
	"account_backend/internal/platform/hash"
)

// 開発・負荷試験用のシードデータ投入コマンドです。
// 全ユーザーのパスワードは共通で、ログイン動作の確認に使えます。

const seedPassword = "123456a"

var firstNames = []string{
	"Alice", "Bob", "Carol", "Daniel", "Erika",
	"Felipe", "Grace", "Hiro", "Ines", "Julia",
	"Kenji", "Laura", "Marcos", "Naomi", "Otto",
}

var lastNames = []string{
	"Silva", "Tanaka", "Johnson", "Souza", "Kim",
	"Miyazaki", "Garcia", "Costa", "Watanabe", "Pereira",
}

var streets = []string{
	"Main St", "Second St", "Cherry Blossom Ave", "Liberty Rd", "Harbor Blvd",
}

var cities = []string{
	"Springfield", "Riverton", "Lakeview", "Fairview", "Kingsport",
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	count := flag.Int("count", 50, "number of users to seed")
	flag.Parse()

	db := infradb.OpenDB()
	repo := adapters.NewUserPostgres(db)
	hasher := hash.NewScrypt()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := 0; i < *count; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]

		// メールはユニーク制約があるためUUIDで衝突を回避
		email := fmt.Sprintf("%s.%s.%s@example.com",
			strings.ToLower(first), strings.ToLower(last), uuid.NewString()[:8])

		salt, hashed, err := hasher.Generate(seedPassword)
		if err != nil {
			log.Fatal("failed to hash seed password:", err)
		}

		user := &entity.User{
			Name:         first + " " + last,
			Email:        email,
			BirthDate:    randomBirthDate(rng),
			PasswordHash: hashed,
			Salt:         salt,
		}

		// 約半数のユーザーに住所を付与
		if rng.Intn(2) == 0 {
			user.Addresses = []entity.Address{
				{
					PostalCode:   10000 + rng.Intn(89999),
					Street:       streets[rng.Intn(len(streets))],
					StreetNumber: 1 + rng.Intn(2000),
					Neighborhood: "Center",
					City:         cities[rng.Intn(len(cities))],
					State:        "SP",
				},
			}
		}

		if err := repo.Create(ctx, user); err != nil {
			log.Fatal("failed to seed user:", err)
		}
	}

	log.Printf("seed ok: %d users (password %q)", *count, seedPassword)
}

// randomBirthDate は18〜60歳相当の過去日付を日-月-年形式で返します。
func randomBirthDate(rng *rand.Rand) string {
	years := 18 + rng.Intn(43)
	days := rng.Intn(365)
	d := time.Now().AddDate(-years, 0, -days)
	return d.Format("02-01-2006")
}
