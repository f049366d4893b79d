package archive

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectName(t *testing.T) {
	assert.Equal(t, "imports/user-1/import_user-1_1/bank.csv", ObjectName("user-1", "import_user-1_1", "bank.csv"))
	assert.Equal(t, "imports/user-1/p/evil.csv", ObjectName("user-1", "p", "../../evil.csv"))
	assert.Equal(t, "imports/user-1/p/upload.csv", ObjectName("user-1", "p", ""))
}

func TestNopArchiver(t *testing.T) {
	var a Archiver = NopArchiver{}
	assert.NoError(t, a.Archive(context.Background(), "x", []byte("data")))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/csv", ContentType("imports/u/p/bank.csv"))
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", ContentType("imports/u/p/Statement.XLSX"))
	assert.Equal(t, "application/vnd.ms-excel", ContentType("imports/u/p/old.xls"))
	assert.Equal(t, "application/octet-stream", ContentType("imports/u/p/notes"))
}
