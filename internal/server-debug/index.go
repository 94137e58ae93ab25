package serverdebug

import (
	"html/template"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var indexTemplate = template.Must(template.New("index").Parse(`<html>
	<title>Cinema Booking Debug</title>
<body>
	<h2>Cinema Booking Debug</h2>
	<ul>
		{{range .Pages}}
		<li><a href="{{.Path}}">{{.Path}}</a> {{.Description}}</li>
		{{end}}
	</ul>

	<h2>Theatres</h2>
	<table>
		{{range .Theatres}}
		<tr><td>Theatre {{.Number}}</td><td>{{.Reserved}}/{{.Capacity}}</td><td><code>{{.Seats}}</code></td></tr>
		{{end}}
	</table>

	<h2>Log Level</h2>
	<form onSubmit="putLogLevel()">
		<select id="log-level-select">
			<option{{ if eq .LogLevel "DEBUG" }} selected{{ end }}>DEBUG</option>
			<option{{ if eq .LogLevel "INFO" }} selected{{ end }}>INFO</option>
			<option{{ if eq .LogLevel "WARN" }} selected{{ end }}>WARN</option>
			<option{{ if eq .LogLevel "ERROR" }} selected{{ end }}>ERROR</option>
		</select>
		<input type="submit" value="Change"></input>
	</form>

	<script>
		function putLogLevel() {
			const req = new XMLHttpRequest();
			req.open('PUT', '/log/level', false);
			req.setRequestHeader('Content-Type', 'application/json');
			req.onload = function() { window.location.reload(); };
			req.send(JSON.stringify({"level": document.getElementById('log-level-select').value}));
		};
	</script>
</body>
</html>
`))

type page struct {
	Path        string
	Description string
}

type indexPage struct {
	pages []page
}

func newIndexPage() *indexPage {
	return &indexPage{}
}

func (i *indexPage) addPage(path string, description string) {
	i.pages = append(i.pages, page{path, description})
}

func (s *Server) index(i *indexPage) echo.HandlerFunc {
	return func(eCtx echo.Context) error {
		theatres := make([]theatreResponse, 0)
		for _, th := range s.cinema.Theatres() {
			t, err := s.theatre(th)
			if err != nil {
				return err
			}
			theatres = append(theatres, t)
		}

		eCtx.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
		return indexTemplate.Execute(eCtx.Response(), struct {
			Pages    []page
			Theatres []theatreResponse
			LogLevel string
		}{
			Pages:    i.pages,
			Theatres: theatres,
			LogLevel: zap.L().Level().CapitalString(),
		})
	}
}
