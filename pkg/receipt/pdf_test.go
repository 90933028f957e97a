package receipt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/maligai/backoffice-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testBill() *entity.Bill {
	return &entity.Bill{
		ID: primitive.NewObjectID(),
		Items: []entity.BillItem{
			{ProductID: 1, Name: "Pencil", UnitPrice: 150, Qty: 2, Subtotal: 300},
			{ProductID: 2, Name: "Notebook", UnitPrice: 2500, Qty: 1, Subtotal: 2500},
		},
		Total: 2800,
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "bill_abc123.pdf", FileName("abc123"))
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir, "Receipt")
	bill := testBill()

	fileName, err := r.Render(bill)

	assert.NoError(t, err)
	assert.Equal(t, "bill_"+bill.ID.Hex()+".pdf", fileName)

	data, err := os.ReadFile(filepath.Join(dir, fileName))
	assert.NoError(t, err)
	assert.True(t, len(data) > 0)
	// PDF magic bytes
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "bills")
	r := NewRenderer(dir, "")

	fileName, err := r.Render(testBill())

	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, fileName))
	assert.NoError(t, err)
}

func TestRenderIsRepeatable(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir, "Receipt")
	bill := testBill()

	first, err := r.Render(bill)
	assert.NoError(t, err)
	second, err := r.Render(bill)
	assert.NoError(t, err)

	// Same bill id yields the same file, overwritten in place
	assert.Equal(t, first, second)

	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}
