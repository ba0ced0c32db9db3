// import carga productos masivamente al catálogo desde un archivo CSV.
//
// Formato esperado (con encabezado): P_ID,Name,Price,Stock
//
// Uso: go run ./cmd/import -file productos.csv [-latin1]
// Con -latin1 el archivo se decodifica como ISO-8859-1 (exportes de hojas
// de cálculo antiguas); por defecto se asume UTF-8.
//
// Filas con ID o nombre vacío, precio inválido o ID duplicado se omiten
// y se reportan; stock negativo se ajusta a 0 con advertencia.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/tu-usuario/punto-venta/internal/application/dto"
	"github.com/tu-usuario/punto-venta/internal/application/usecase"
	"github.com/tu-usuario/punto-venta/internal/domain"
	"github.com/tu-usuario/punto-venta/internal/infrastructure/postgres"
	"github.com/tu-usuario/punto-venta/pkg/config"
)

func main() {
	filePath := flag.String("file", "", "ruta del archivo CSV de productos")
	latin1 := flag.Bool("latin1", false, "decodificar el archivo como ISO-8859-1")
	flag.Parse()

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "uso: import -file productos.csv [-latin1]")
		os.Exit(1)
	}

	f, err := os.Open(*filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var src io.Reader = f
	if *latin1 {
		src = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	productUC := usecase.NewProductUseCase(postgres.NewProductRepository(pool))

	reader := csv.NewReader(src)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer encabezado: %v\n", err)
		os.Exit(1)
	}
	cols, err := columnIndexes(header)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	var imported, skipped, adjusted int
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			fmt.Fprintf(os.Stderr, "línea %d: %v (omitida)\n", line, err)
			skipped++
			continue
		}

		id := strings.TrimSpace(record[cols.id])
		name := strings.TrimSpace(record[cols.name])
		if id == "" || name == "" {
			fmt.Fprintf(os.Stderr, "línea %d: ID o nombre vacío (omitida)\n", line)
			skipped++
			continue
		}

		price, err := decimal.NewFromString(strings.TrimSpace(record[cols.price]))
		if err != nil || !price.IsPositive() {
			fmt.Fprintf(os.Stderr, "línea %d: precio inválido %q (omitida)\n", line, record[cols.price])
			skipped++
			continue
		}

		stock, err := strconv.ParseInt(strings.TrimSpace(record[cols.stock]), 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "línea %d: stock inválido %q (omitida)\n", line, record[cols.stock])
			skipped++
			continue
		}
		if stock < 0 {
			fmt.Fprintf(os.Stderr, "línea %d: stock negativo %d ajustado a 0\n", line, stock)
			stock = 0
			adjusted++
		}

		_, err = productUC.Create(dto.CreateProductRequest{
			ProductID: id,
			Name:      name,
			Price:     price,
			Stock:     stock,
		})
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			fmt.Fprintf(os.Stderr, "línea %d: producto %s ya existe (omitida)\n", line, id)
			skipped++
		case err != nil:
			fmt.Fprintf(os.Stderr, "línea %d: %v (omitida)\n", line, err)
			skipped++
		default:
			imported++
		}
	}

	fmt.Printf("Importación completada: %d importados, %d omitidos, %d con stock ajustado\n",
		imported, skipped, adjusted)
	if skipped > 0 {
		os.Exit(2)
	}
}

type columns struct {
	id, name, price, stock int
}

// columnIndexes ubica las columnas por nombre para tolerar reordenamientos.
func columnIndexes(header []string) (columns, error) {
	idx := map[string]int{}
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	cols := columns{id: -1, name: -1, price: -1, stock: -1}
	var ok bool
	if cols.id, ok = idx["p_id"]; !ok {
		return cols, fmt.Errorf("encabezado sin columna P_ID: %v", header)
	}
	if cols.name, ok = idx["name"]; !ok {
		return cols, fmt.Errorf("encabezado sin columna Name: %v", header)
	}
	if cols.price, ok = idx["price"]; !ok {
		return cols, fmt.Errorf("encabezado sin columna Price: %v", header)
	}
	if cols.stock, ok = idx["stock"]; !ok {
		return cols, fmt.Errorf("encabezado sin columna Stock: %v", header)
	}
	return cols, nil
}
