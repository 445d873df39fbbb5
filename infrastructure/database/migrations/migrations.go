package migrations

import "embed"

// FS arquivos SQL lidos pelo golang-migrate através do driver iofs
//
//go:embed *.sql
var FS embed.FS

// Version última versão do schema
const Version = 2
