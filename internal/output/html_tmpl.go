// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

package output

const layoutTemplate = `{{define "head"}}<!DOCTYPE html>
<html lang="de">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="report-id" content="{{.ReportID}}">
<title>{{.Title}}</title>
<link rel="stylesheet" href="assets/report.css">
</head>
<body>
<header>
  <h1>{{.Title}}</h1>
  <nav><a href="index.html">Übersicht</a> &middot; <a href="linkchecker.html">Tote Links</a></nav>
  <p>Stand: {{.GeneratedAt}}</p>
</header>
{{end}}{{define "foot"}}
</body>
</html>
{{end}}`

const indexTemplate = `{{template "head" .WithTitle "Linkchecker"}}
<section class="cards" id="summary">
  <div class="card"><div class="value">{{.NumDatasets}}</div><div class="label">Datensätze</div></div>
  <div class="card card-working"><div class="value">{{.Working}}</div><div class="label">{{.WorkingLabel}}</div></div>
  <div class="card card-broken"><div class="value">{{.Broken}}</div><div class="label">{{.BrokenLabel}}</div></div>
</section>

<section class="chart-box">
  <div id="{{.MountID}}"></div>
</section>

<section>
<h2>Tote Links nach Datenquelle</h2>
<div class="portals">
<table class="table has-sum">
<thead>
<tr>
  <th><button class="sort" data-sort="datasource">Datenquelle</button></th>
  <th><button class="sort" data-sort="brokenrecords">Datensätze mit toten Links</button></th>
</tr>
</thead>
<tbody class="list">
{{- range .Portals}}
<tr><td class="datasource"><a href="linkchecker.html#{{.Anchor}}">{{.Name}}</a></td><td class="brokenrecords">{{.Broken}}</td></tr>
{{- end}}
</tbody>
<tfoot>
<tr><td>Summe</td><td id="sumofdeadlinks"></td></tr>
</tfoot>
</table>
</div>
</section>
{{template "foot"}}`

const linkCheckerTemplate = `{{template "head" .WithTitle "Tote Links"}}
{{- if not .Portals}}
<p class="empty">Keine toten Links gefunden.</p>
{{- end}}
{{- range .Portals}}
<section class="portal">
<h2 id="{{.Anchor}}">{{.Name}} <span class="count">({{.Broken}})</span></h2>
<div class="records">
<table class="table">
<thead>
<tr>
  <th><button class="sort" data-sort="name">Datensatz</button></th>
  <th><button class="sort" data-sort="maintainer">Ansprechpartner</button></th>
  <th>Tote Links</th>
  <th><button class="sort" data-sort="strikes">Fehlversuche</button></th>
</tr>
</thead>
<tbody class="list">
{{- range .Records}}
<tr>
  <td class="name">{{if .DetailLink}}<a href="{{.DetailLink}}">{{.Name}}</a>{{else}}{{.Name}}{{end}}{{if .APILink}} <a class="api" href="{{.APILink}}">API</a>{{end}}</td>
  <td class="maintainer">{{if .MaintainerEmail}}<a href="mailto:{{.MaintainerEmail}}">{{.Maintainer}}</a>{{else}}{{.Maintainer}}{{end}}</td>
  <td class="urls"><ul>
  {{- range .URLs}}
    <li><a href="{{.URL}}">{{.URL}}</a> <span class="status">{{.Status}}</span> <span class="date">{{.Date}}</span></li>
  {{- end}}
  </ul></td>
  <td class="strikes">{{.Strikes}}</td>
</tr>
{{- end}}
</tbody>
</table>
</div>
</section>
{{- end}}
{{template "foot"}}`

const reportCSS = `:root {
  --bg: #fff; --fg: #1a1a2e; --card-bg: #f8f9fa; --border: #dee2e6;
  --table-alt: #f1f3f5; --hover: #e9ecef; --muted: #6c757d;
  --working: #1f77b4; --broken: #ff7f0e; --accent: #0d6efd;
}
@media (prefers-color-scheme: dark) {
  :root {
    --bg: #1a1a2e; --fg: #e9ecef; --card-bg: #16213e; --border: #495057;
    --table-alt: #0f3460; --hover: #1a1a4e; --muted: #adb5bd; --accent: #5b9aff;
  }
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; padding: 1rem; max-width: 1200px; margin: 0 auto; }
header { margin-bottom: 1.5rem; }
header h1 { font-size: 1.5rem; margin-bottom: .25rem; }
header p, header nav { color: var(--muted); font-size: .875rem; }
a { color: var(--accent); }
h2 { font-size: 1.125rem; margin: 1.5rem 0 .5rem; }
h2 .count { color: var(--muted); font-weight: 400; }
.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(160px, 1fr)); gap: .75rem; margin-bottom: 1.5rem; }
.card { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: .75rem; text-align: center; }
.card .value { font-size: 1.5rem; font-weight: 700; }
.card .label { font-size: .75rem; color: var(--muted); text-transform: uppercase; }
.card-working .value { color: var(--working); }
.card-broken .value { color: var(--broken); }
.chart-box { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: 1rem; display: flex; flex-wrap: wrap; align-items: center; }
.legend text { font-size: .8125rem; fill: var(--fg); }
table { width: 100%; border-collapse: collapse; font-size: .8125rem; }
th, td { padding: .5rem .625rem; text-align: left; border-bottom: 1px solid var(--border); vertical-align: top; }
td.brokenrecords, td.strikes, tfoot td:last-child { text-align: right; }
tbody tr:nth-child(even) { background: var(--table-alt); }
tbody tr:hover { background: var(--hover); }
tfoot td { font-weight: 700; }
button.sort { background: none; border: 0; font: inherit; font-weight: 700; color: inherit; cursor: pointer; }
button.sort:hover { color: var(--accent); }
button.sort.asc::after { content: " \25B2"; font-size: .625rem; }
button.sort.desc::after { content: " \25BC"; font-size: .625rem; }
td.urls ul { list-style: none; }
td.urls .status { font-weight: 700; color: var(--broken); }
td.urls .date { color: var(--muted); }
.empty { color: var(--muted); text-align: center; margin-top: 20vh; }
`
