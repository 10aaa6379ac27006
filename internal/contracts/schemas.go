package contracts

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemasFS embed.FS

var (
	propertyCreateSchema *jsonschema.Schema
	propertyUpdateSchema *jsonschema.Schema
)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	// Добавляем схемы как ресурсы и компилируем при старте.
	// Невалидная схема - ошибка сборки приложения, падаем сразу.
	for _, name := range []string{"schemas/property-create.json", "schemas/property-update.json"} {
		file, err := schemasFS.Open(name)
		if err != nil {
			log.Fatalf("failed to open schema %s: %v", name, err)
		}
		if err := compiler.AddResource(name, file); err != nil {
			log.Fatalf("failed to add schema resource %s: %v", name, err)
		}
		file.Close()
	}

	var err error
	propertyCreateSchema, err = compiler.Compile("schemas/property-create.json")
	if err != nil {
		log.Fatalf("failed to compile property-create schema: %v", err)
	}
	propertyUpdateSchema, err = compiler.Compile("schemas/property-update.json")
	if err != nil {
		log.Fatalf("failed to compile property-update schema: %v", err)
	}
}

// ValidatePropertyCreate проверяет тело запроса на создание.
// Возвращает map "поле -> сообщение"; пустая map означает, что тело
// валидно.
func ValidatePropertyCreate(body []byte) map[string]string {
	return validate(propertyCreateSchema, body)
}

// ValidatePropertyUpdate проверяет тело запроса на частичное обновление.
func ValidatePropertyUpdate(body []byte) map[string]string {
	return validate(propertyUpdateSchema, body)
}

func validate(schema *jsonschema.Schema, body []byte) map[string]string {
	// UseNumber - числа остаются json.Number, цена валидируется без
	// прохода через float64.
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var doc interface{}
	if err := decoder.Decode(&doc); err != nil {
		return map[string]string{"body": "invalid JSON"}
	}

	err := schema.Validate(doc)
	if err == nil {
		return nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return map[string]string{"body": err.Error()}
	}

	fieldErrors := make(map[string]string)
	collectLeafErrors(validationErr, fieldErrors)
	return fieldErrors
}

// collectLeafErrors обходит дерево причин и оставляет по одному
// сообщению на поле. Ошибка required разворачивается в отдельную
// запись на каждое отсутствующее поле.
func collectLeafErrors(err *jsonschema.ValidationError, out map[string]string) {
	if len(err.Causes) > 0 {
		for _, cause := range err.Causes {
			collectLeafErrors(cause, out)
		}
		return
	}

	if strings.HasSuffix(err.KeywordLocation, "/required") {
		for _, field := range parseMissingProperties(err.Message) {
			out[field] = "is required"
		}
		return
	}

	field := fieldFromInstanceLocation(err.InstanceLocation)
	if _, taken := out[field]; !taken {
		out[field] = err.Message
	}
}

// parseMissingProperties выдирает имена полей из сообщения вида
// "missing properties: 'title', 'price'".
func parseMissingProperties(message string) []string {
	var fields []string
	parts := strings.Split(message, "'")
	for i := 1; i < len(parts); i += 2 {
		fields = append(fields, parts[i])
	}
	return fields
}

// fieldFromInstanceLocation превращает JSON pointer ("/imageUrls/0")
// в имя поля верхнего уровня ("imageUrls"). Пустой pointer - ошибка
// на самом теле.
func fieldFromInstanceLocation(location string) string {
	trimmed := strings.TrimPrefix(location, "/")
	if trimmed == "" {
		return "body"
	}
	if idx := strings.Index(trimmed, "/"); idx >= 0 {
		return trimmed[:idx]
	}
	return trimmed
}
