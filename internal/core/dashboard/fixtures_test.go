package dashboard

import (
	"strings"
	"testing"
	"time"

	"dashboard-service/internal/domain"

	"github.com/stretchr/testify/require"
)

var brt = time.FixedZone("BRT", -3*60*60)

const headerLine = "Horário do pedido,Valor de Compra(R$),Comissão líquida do afiliado(R$)," +
	"Taxa de contrato do afiliado,Sub_id1,Sub_id2,Sub_id3,Canal"

// sampleCSV has four orders: one without commission and one without a readable date.
var sampleCSV = strings.Join([]string{
	headerLine,
	`2024-03-01 10:00:00,"R$ 100,00","R$ 10,00",10%,camp1,ad1,x,Instagram`,
	`2024-03-02 11:00:00,"R$ 50,00","R$ 0,00",,camp2,ad2,,Facebook`,
	`2024-03-03 12:00:00,"R$ 1.200,00","R$ 60,00",5%,camp1,ad1,y,Facebook`,
	`,"R$ 30,00","R$ 3,00",10%,,ad3,,Instagram`,
}, "\n") + "\n"

func sampleProcessed(t *testing.T) domain.Processed {
	t.Helper()
	parsed := ParseCSV(sampleCSV)
	require.Len(t, parsed.Data, 4)
	return ProcessRows(parsed.Data, brt)
}

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, brt)
	return &t
}

func ptr[T any](v T) *T {
	return &v
}
