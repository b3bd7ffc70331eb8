// Package fuzztests houses Go fuzz harnesses for the classification
// pipeline (source -> scan -> keywords) and the keyword file loader. They
// guard against panics and broken span or registration invariants on
// arbitrary input.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
