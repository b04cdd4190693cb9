package main

import (
	"gorm.io/gen"

	"winespa/internal/infra/persistence/model"
)

func main() {
	models := []any{
		model.AccountModel{},
		model.RoleModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
