package web

import (
	"fmt"
	"html"
	"net/http"

	"api-footwear/internal/models"
	"api-footwear/internal/views"
)

// SnapshotReader es lo que la página de estado necesita leer
type SnapshotReader interface {
	Snapshot() models.Snapshot
}

// StatusPageHandler sirve una página web con los KPIs, estaciones, inventario y alertas
func StatusPageHandler(source SnapshotReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := source.Snapshot()
		k := snap.KPIs

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="es">
<head>
	<meta charset="UTF-8">
	<meta http-equiv='refresh' content='5'>
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Estado de Planta</title>
	<style>
		body {
			font-family: 'Segoe UI', Arial, sans-serif;
			background: #0f172a;
			color: #e2e8f0;
			margin: 0;
			padding: 0;
		}
		.container {
			max-width: 960px;
			margin: 40px auto;
			background: #111827;
			border-radius: 16px;
			border: 1px solid #1e293b;
			padding: 32px 24px;
		}
		h1, h2 {
			color: #60a5fa;
		}
		.kpis {
			display: grid;
			grid-template-columns: repeat(3, 1fr);
			gap: 12px;
			margin-bottom: 24px;
		}
		.kpi {
			background: #1e293b;
			border-radius: 12px;
			padding: 12px;
			text-align: center;
		}
		.kpi .label {
			font-size: 0.75em;
			color: #94a3b8;
			text-transform: uppercase;
		}
		.kpi .value {
			font-size: 1.4em;
			font-weight: bold;
		}
		table {
			width: 100%%;
			border-collapse: collapse;
			margin-bottom: 16px;
		}
		th, td {
			padding: 10px 8px;
			text-align: left;
		}
		th {
			background: #1e3a8a;
			color: #fff;
		}
		tr:nth-child(even) {
			background: #1e293b;
		}
		.error { color: #f87171; font-weight: bold; }
		.warning { color: #fbbf24; font-weight: bold; }
		.info { color: #60a5fa; font-weight: bold; }
		.ok { color: #34d399; font-weight: bold; }
		.bar {
			display: inline-block;
			height: 12px;
			background: #3b82f6;
			border-radius: 6px;
			margin-left: 8px;
		}
		.bar.low { background: #ef4444; }
	</style>
</head>
<body>
	<div class="container">
		<h1>Estado de Planta</h1>
		<div class="kpis">
			<div class="kpi"><div class="label">Pairs Today</div><div class="value">%d</div></div>
			<div class="kpi"><div class="label">Active Processes</div><div class="value">%d</div></div>
			<div class="kpi"><div class="label">Defect Rate</div><div class="value">%.2f%%</div></div>
			<div class="kpi"><div class="label">Utilization</div><div class="value">%.1f%%</div></div>
			<div class="kpi"><div class="label">On-Time</div><div class="value">%.1f%%</div></div>
			<div class="kpi"><div class="label">Target Achieved</div><div class="value">%.1f%%</div></div>
		</div>
`, k.TotalPairs, k.ActiveProcesses, k.DefectRate, k.Utilization, k.OnTimeProduction, k.TargetAchieved)

		fmt.Fprint(w, `		<h2>Estaciones</h2>
		<table>
			<tr><th>Estación</th><th>Estado</th><th>Throughput</th><th>Precisión</th><th>Energía</th><th>Mantención</th></tr>
`)
		for _, s := range snap.Stations {
			statusClass := "ok"
			if s.Status != models.StatusRunning {
				statusClass = "warning"
			}
			fmt.Fprintf(w, "<tr><td>%s</td><td class='%s'>%s</td><td>%d</td><td>%.1f%%</td><td>%.1f kWh</td><td>%s</td></tr>\n",
				html.EscapeString(s.Name), statusClass, html.EscapeString(string(s.Status)),
				s.Throughput, s.Accuracy, s.EnergyConsumption, html.EscapeString(s.LastMaintenance))
		}

		fmt.Fprint(w, `		</table>
		<h2>Inventario</h2>
		<table>
			<tr><th>Material</th><th>Nivel</th><th>Máximo</th><th>%</th></tr>
`)
		for _, item := range views.InventoryViews(snap.Inventory) {
			barClass := "bar"
			if item.LowStock {
				barClass = "bar low"
			}
			fmt.Fprintf(w, "<tr><td>%s</td><td>%.0f %s</td><td>%.0f</td><td>%.0f%%<div class='%s' style='width:%.0fpx'></div></td></tr>\n",
				html.EscapeString(item.Label), item.Value, html.EscapeString(item.Unit), item.Max,
				item.Percent, barClass, item.Percent)
		}

		fmt.Fprint(w, `		</table>
		<h2>Alertas</h2>
		<table>
			<tr><th>Hora</th><th>Tipo</th><th>Mensaje</th><th>Recomendación</th></tr>
`)
		for _, a := range views.AlertsBySeverity(snap.Alerts) {
			fmt.Fprintf(w, "<tr><td>%s</td><td class='%s'>%s</td><td>%s</td><td>%s</td></tr>\n",
				html.EscapeString(a.Timestamp), html.EscapeString(string(a.Type)), html.EscapeString(string(a.Type)),
				html.EscapeString(a.Message), html.EscapeString(a.Recommendation))
		}

		fmt.Fprintf(w, `		</table>
		<div style='text-align:center;color:#64748b;font-size:0.9em;'>Foto %s · Actualización automática cada 5 segundos</div>
	</div>
</body>
</html>`, html.EscapeString(snap.ID))
	}
}
