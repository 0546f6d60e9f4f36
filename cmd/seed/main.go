package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"bookstore/internal/config"
	"bookstore/internal/entity"
	"bookstore/internal/logger"
	"bookstore/internal/store"
)

type seedAuthor struct {
	first, last, bio string
	books            []seedBook
}

type seedBook struct {
	title string
	year  int
}

var catalog = []seedAuthor{
	{"Jane", "Austen", "English novelist of manners.", []seedBook{
		{"Pride and Prejudice", 1813}, {"Emma", 1815}, {"Persuasion", 1817},
	}},
	{"Mary", "Shelley", "English novelist and dramatist.", []seedBook{
		{"Frankenstein", 1818}, {"The Last Man", 1826},
	}},
	{"Herman", "Melville", "American novelist.", []seedBook{
		{"Moby-Dick", 1851}, {"Billy Budd", 1924},
	}},
	{"Leo", "Tolstoy", "Russian writer.", []seedBook{
		{"War and Peace", 1869}, {"Anna Karenina", 1878},
	}},
	{"Chinua", "Achebe", "Nigerian novelist and poet.", []seedBook{
		{"Things Fall Apart", 1958},
	}},
}

func main() {
	isbnBase := flag.Int("isbn-base", 9780000000000, "First ISBN assigned to seeded books")
	flag.Parse()

	cfg, err := config.Load()
	log := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	st := store.New(pool, store.WithLogger(log), store.WithQueryTimeout(cfg.QueryTimeout))

	// One session: authors first so their ids flow into the books.
	uow := st.Begin()
	isbn := *isbnBase
	var books int
	for _, sa := range catalog {
		bio := sa.bio
		a := &entity.Author{FirstName: sa.first, LastName: sa.last, Bio: &bio}
		uow.AddAuthor(a)
		for _, sb := range sa.books {
			uow.AddBook(&entity.Book{
				Title:  sb.title,
				Year:   sb.year,
				ISBN:   fmt.Sprintf("%013d", isbn),
				Price:  decimal.NewNullDecimal(randomPrice()),
				Author: a,
			})
			isbn++
			books++
		}
	}

	if err := uow.Commit(ctx); err != nil {
		log.Error("failed to seed", "error", err)
		os.Exit(1)
	}
	log.Info("seeded catalog", "authors", len(catalog), "books", books)
}

// randomPrice returns a price between 4.99 and 29.99.
func randomPrice() decimal.Decimal {
	return decimal.New(int64(499+rand.Intn(2501)), -2)
}
