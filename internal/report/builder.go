package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/inventory"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/stats"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

const (
	notInformed = "Não informado"
	dateBR      = "02/01/2006"
)

type Builder struct {
	salon string
	mode  stats.PriceMode
}

func NewBuilder(salonName string, mode stats.PriceMode) *Builder {
	return &Builder{salon: salonName, mode: mode}
}

func (b *Builder) Build(kind Kind, snap stats.Snapshot, now time.Time) Workbook {
	if kind == KindDetailed {
		return b.Detailed(snap, now)
	}
	return b.General(snap, now)
}

// FileName is Relatorio_Geral_<date>.<ext> or Relatorio_Detalhado_<date>.<ext>.
func FileName(kind Kind, now time.Time, ext string) string {
	name := "Relatorio_Geral"
	if kind == KindDetailed {
		name = "Relatorio_Detalhado"
	}
	return fmt.Sprintf("%s_%s.%s", name, now.Format("2006-01-02"), ext)
}

// ======================================================
// GERAL
// ======================================================

func (b *Builder) General(snap stats.Snapshot, now time.Time) Workbook {
	r := stats.NewResolver(snap, b.mode)

	return Workbook{
		Kind: KindGeneral,
		Sheets: []Sheet{
			b.closingSheet(snap, now),
			clientsSheet("Clientes", snap.Clients, now.Location(), false),
			appointmentsSheet("Agendamentos", snap.Appointments, r, now.Location(), false),
			servicesSheet("Serviços", snap.Services, now.Location(), false),
			productsSheet(snap.Products),
		},
	}
}

func (b *Builder) closingSheet(snap stats.Snapshot, now time.Time) Sheet {
	c := stats.Closing(snap, now, b.mode)

	rate := "0%"
	if c.TotalAppointments > 0 {
		rate = fmt.Sprintf("%.1f%%", c.CompletionRate)
	}

	s := Sheet{
		Name:   "Fechamento",
		Title:  "FECHAMENTO DO MÊS - " + strings.ToUpper(c.Month),
		Widths: []float64{30, 18, 15, 15},
	}
	add := func(cells ...string) { s.Rows = append(s.Rows, cells) }
	section := func(caption string) {
		s.Sections = append(s.Sections, len(s.Rows))
		add(caption)
	}

	add(strings.ToUpper(b.salon))
	add("Data de Geração:", now.Format(dateBR))
	add()
	section("FATURAMENTO DO MÊS")
	add("Faturamento Total:", money(c.Revenue))
	add("Serviços Realizados:", strconv.Itoa(c.CompletedCount))
	add("Ticket Médio:", money(c.AverageTicket))
	add()
	section("PERFORMANCE DO MÊS")
	add("Total de Agendamentos:", strconv.Itoa(c.TotalAppointments))
	add("Agendamentos Concluídos:", strconv.Itoa(c.CompletedCount))
	add("Taxa de Conclusão:", rate)
	add("Agendamentos Cancelados:", strconv.Itoa(c.CanceledCount))
	add()
	section(fmt.Sprintf("TOP %d SERVIÇOS MAIS VENDIDOS", stats.ClosingTopN))
	for i, sc := range c.TopServices {
		add(fmt.Sprintf("%dº %s:", i+1, sc.Name), fmt.Sprintf("%d vendas", sc.Count))
	}
	add()
	section("CLIENTES")
	add("Total de Clientes Cadastrados:", strconv.Itoa(c.RegisteredClients))
	add("Clientes Atendidos no Mês:", strconv.Itoa(c.ClientsServed))

	return s
}

// ======================================================
// DETALHADO
// ======================================================

func (b *Builder) Detailed(snap stats.Snapshot, now time.Time) Workbook {
	r := stats.NewResolver(snap, b.mode)

	return Workbook{
		Kind: KindDetailed,
		Sheets: []Sheet{
			b.dashboardSheet(snap, now),
			clientsSheet("Todos os Clientes", snap.Clients, now.Location(), true),
			appointmentsSheet("Todos os Agendamentos", snap.Appointments, r, now.Location(), true),
			servicesSheet("Todos os Serviços", snap.Services, now.Location(), true),
		},
	}
}

func (b *Builder) dashboardSheet(snap stats.Snapshot, now time.Time) Sheet {
	dash := stats.Dashboard(snap, now, b.mode)
	life := stats.Lifetime(snap, b.mode)
	rep := stats.Report(snap)

	s := Sheet{
		Name:   "Dashboard",
		Title:  "RELATÓRIO DETALHADO - " + strings.ToUpper(b.salon),
		Widths: []float64{28, 18, 34, 12, 12},
	}
	add := func(cells ...string) { s.Rows = append(s.Rows, cells) }
	section := func(caption string) {
		s.Sections = append(s.Sections, len(s.Rows))
		add(caption)
	}

	section("Análise Completa do Negócio")
	add("Data:", now.Format(dateBR), "Horário:", now.Format("15:04:05"))
	add()
	section("INDICADORES PRINCIPAIS")
	add("Métrica", "Valor", "Descrição")
	add("Total de Clientes", strconv.Itoa(dash.TotalClients), "Clientes cadastrados no sistema")
	add("Total de Agendamentos", strconv.Itoa(life.TotalAppointments), "Agendamentos registrados")
	add("Agendamentos de Hoje", strconv.Itoa(dash.AppointmentsToday), "Marcados para hoje")
	add("Serviços Disponíveis", strconv.Itoa(rep.ActiveServices), "Serviços ativos")
	add("Produtos Cadastrados", strconv.Itoa(rep.TotalProducts), "Produtos no estoque")
	add()
	section("ANÁLISE FINANCEIRA")
	add("Receita Total", money(life.Revenue), "Faturamento acumulado")
	add("Receita do Mês", money(dash.MonthlyRevenue), "Concluídos no mês corrente")
	add("Ticket Médio", money(life.AverageTicket), "Valor médio por atendimento")
	add("Serviços Realizados", strconv.Itoa(dash.CompletedServices), "Agendamentos concluídos")
	add()
	section("ESTOQUE")
	add("Produtos para Repor", strconv.Itoa(len(stats.LowStock(snap.Products))), "Sem estoque ou abaixo do mínimo")

	return s
}

// ======================================================
// ABAS DE DADOS
// ======================================================

func clientsSheet(name string, clients []models.Client, loc *time.Location, detailed bool) Sheet {
	s := Sheet{Name: name}

	if detailed {
		s.Header = []string{"ID", "Nome Completo", "Email", "Telefone", "Data Nascimento", "Endereço", "Data Cadastro"}
		s.Widths = []float64{38, 25, 30, 16, 15, 30, 15}
	} else {
		s.Header = []string{"Nome Completo", "Email", "Telefone", "Data de Nascimento", "Data de Cadastro"}
		s.Widths = []float64{25, 30, 16, 18, 16}
	}

	for _, c := range clients {
		phone := orDefault(validators.FormatPhone(c.Phone), notInformed)
		birth := orDefault(formatDate(c.BirthDate, loc), notInformed)
		created := orDefault(formatTime(c.CreatedAt, loc), notInformed)

		if detailed {
			s.Rows = append(s.Rows, []string{
				c.ID, c.Name, orDefault(c.Email, notInformed), phone, birth,
				orDefault(c.Address, notInformed), created,
			})
			continue
		}
		s.Rows = append(s.Rows, []string{c.Name, orDefault(c.Email, notInformed), phone, birth, created})
	}
	return s
}

func appointmentsSheet(name string, appts []models.Appointment, r *stats.Resolver, loc *time.Location, detailed bool) Sheet {
	s := Sheet{Name: name}

	if detailed {
		s.Header = []string{"ID", "Data", "Horário", "Cliente", "Serviço", "Status", "Valor", "Observações", "Data Criação"}
		s.Widths = []float64{38, 12, 10, 25, 25, 12, 12, 30, 15}
	} else {
		s.Header = []string{"Data", "Horário", "Cliente", "Serviço", "Status", "Valor", "Observações"}
		s.Widths = []float64{12, 10, 25, 25, 12, 12, 30}
	}

	sorted := make([]models.Appointment, len(appts))
	copy(sorted, appts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].Time < sorted[j].Time
	})

	for _, ap := range sorted {
		row := []string{
			orDefault(formatDate(ap.Date, loc), "N/A"),
			orDefault(ap.Time, "N/A"),
			r.ClientName(ap.ClientID),
			r.ServiceName(ap.ServiceID),
			appointment.CurrentStatus(ap).Label(),
			money(r.Price(ap)),
			orDefault(ap.Observations, "Nenhuma"),
		}
		if detailed {
			row = append([]string{ap.ID}, row...)
			row = append(row, orDefault(formatTime(ap.CreatedAt, loc), "N/A"))
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}

func servicesSheet(name string, services []models.Service, loc *time.Location, detailed bool) Sheet {
	s := Sheet{Name: name}

	if detailed {
		s.Header = []string{"ID", "Nome", "Categoria", "Duração (min)", "Preço", "Status", "Descrição", "Data Criação"}
		s.Widths = []float64{38, 30, 20, 14, 12, 10, 40, 15}
	} else {
		s.Header = []string{"Nome do Serviço", "Categoria", "Duração (min)", "Preço", "Status", "Descrição"}
		s.Widths = []float64{30, 20, 14, 12, 10, 40}
	}

	for _, sv := range services {
		status := "Inativo"
		if sv.Active {
			status = "Ativo"
		}
		row := []string{
			sv.Name,
			sv.Category,
			strconv.Itoa(sv.DurationMinutes),
			money(sv.Price),
			status,
			orDefault(sv.Description, "Sem descrição"),
		}
		if detailed {
			row = append([]string{sv.ID}, row...)
			row = append(row, orDefault(formatTime(sv.CreatedAt, loc), "N/A"))
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}

func productsSheet(products []models.Product) Sheet {
	s := Sheet{
		Name:   "Produtos",
		Header: []string{"Nome", "Categoria", "Quantidade", "Estoque Mínimo", "Preço", "Status", "Descrição"},
		Widths: []float64{30, 20, 12, 15, 12, 15, 40},
	}

	for _, p := range products {
		s.Rows = append(s.Rows, []string{
			p.Name,
			p.Category,
			strconv.Itoa(p.Quantity),
			strconv.Itoa(p.MinimumStock),
			money(p.Price),
			inventory.Of(p).Label(),
			orDefault(p.Description, "Sem descrição"),
		})
	}
	return s
}

// ======================================================
// FORMATAÇÃO
// ======================================================

func money(d decimal.Decimal) string {
	return "R$ " + d.StringFixed(2)
}

// formatDate renders a stored date as dd/mm/yyyy. Values that do not parse
// are kept as typed.
func formatDate(s string, loc *time.Location) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	t, err := dateparse.ParseIn(s, loc)
	if err != nil {
		return s
	}
	return t.Format(dateBR)
}

func formatTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(loc).Format(dateBR)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
