package psqlbuilder

import "github.com/Masterminds/squirrel"

// Пакет оборачивает squirrel, фиксируя плейсхолдеры Postgres ($1, $2, ...)
// чтобы репозитории не повторяли PlaceholderFormat в каждом запросе

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select возвращает SELECT builder с долларовыми плейсхолдерами
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert возвращает INSERT builder с долларовыми плейсхолдерами
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update возвращает UPDATE builder с долларовыми плейсхолдерами
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete возвращает DELETE builder с долларовыми плейсхолдерами
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
