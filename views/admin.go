package views

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/weddingnanny"
	"github.com/eringen/weddingnanny/content"
	"github.com/eringen/weddingnanny/dashboard"
)

// AdminLogin renders the password form.
func AdminLogin(showError bool, csrfToken string) templ.Component {
	return component(func(b *htmlBuf) {
		writeHead(b, pageHead{Title: "Admin Login", NoIndex: true})
		b.raw(`<body class="admin admin-login"><main><h1>Admin Login</h1>`)
		if showError {
			b.raw(`<p class="error" role="alert">Incorrect password.</p>`)
		}
		b.raw(`<form method="post" action="/admin/login/"><input type="hidden" name="_csrf" value="`)
		b.text(csrfToken)
		b.raw(`"/><label>Password <input type="password" name="password" autofocus required/></label>`,
			`<button type="submit">Log in</button></form></main></body></html>`)
	})
}

// AdminConsole renders the content management console. Edits are sent to the
// JSON API by the inline script; the page reloads after each change.
func AdminConsole(v weddingnanny.AdminView) templ.Component {
	return component(func(b *htmlBuf) {
		writeHead(b, pageHead{Title: "Admin | " + v.State.Global.SiteName, NoIndex: true, CSRFToken: v.CSRFToken})
		b.raw(`<body class="admin"><header class="admin-header"><h1>`)
		b.text(v.State.Global.SiteName)
		b.raw(` Admin</h1><a href="/" target="_blank">View site</a></header>`)
		if v.LoadWarning != "" {
			b.raw(`<p class="warning" role="alert">Saved content could not be loaded; showing defaults. `)
			b.text(v.LoadWarning)
			b.raw(`</p>`)
		}
		if v.Message != "" {
			b.raw(`<p class="notice">`)
			b.text(v.Message)
			b.raw(`</p>`)
		}
		b.raw(`<main>`)
		writeDashboard(b, v.Stats, v.Calendar)
		for _, id := range v.CityIDs {
			writeCityEditor(b, id, v.State.Cities[id])
		}
		writeGlobalEditor(b, v.State.Global)
		writeBackups(b, v.State.Backups)
		writeMedia(b, v.Images)
		writeLogs(b, v.State.Logs)
		b.raw(`</main>`, adminScript, `</body></html>`)
	})
}

func writeDashboard(b *htmlBuf, st dashboard.Stats, cal dashboard.Month) {
	b.raw(`<section id="dashboard"><h2>Metrics &amp; Calendar</h2><div class="totals"><div><span>Estimated Revenue</span><strong>&#8377;`)
	b.text(formatAmount(st.TotalRevenue))
	b.raw(`</strong></div><div><span>Active Bookings</span><strong>`)
	b.text(strconv.Itoa(st.TotalBookings))
	b.raw(`</strong></div></div><h3>Bookings per City</h3><ul class="bars">`)
	for _, c := range st.Cities {
		b.raw(`<li><span>`)
		b.text(c.Name)
		b.raw(`</span><span>`)
		b.text(fmt.Sprintf("%d Bookings", c.Count))
		b.raw(`</span><div class="bar" style="width:`, strconv.Itoa(c.Percent(st.MaxCityCount)), `%"></div></li>`)
	}
	b.raw(`</ul><h3>`)
	b.text(fmt.Sprintf("Bookings Calendar, %s %d", cal.Month, cal.Year))
	b.raw(`</h3><div class="calendar">`)
	for _, d := range []time.Weekday{time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday} {
		b.raw(`<div class="dow">`, d.String()[:3], `</div>`)
	}
	for i := 0; i < cal.Offset; i++ {
		b.raw(`<div class="day empty"></div>`)
	}
	for _, d := range cal.Days {
		b.raw(`<div class="day"><span>`, strconv.Itoa(d.Day), `</span>`)
		for _, bk := range d.Bookings {
			b.raw(`<div class="booking booking-`)
			b.text(string(bk.Status))
			b.raw(`">`)
			b.text(fmt.Sprintf("%s (%s)", bk.ClientName, bk.City))
			b.raw(`</div>`)
		}
		b.raw(`</div>`)
	}
	b.raw(`</div></section>`)
}

// formatAmount groups digits in threes.
func formatAmount(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	var out []byte
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

func apiButton(b *htmlBuf, label, method, url, body string, extra ...string) {
	b.raw(`<button type="button" data-api="`)
	b.text(url)
	b.raw(`" data-method="`, method, `"`)
	if body != "" {
		b.raw(` data-body="`)
		b.text(body)
		b.raw(`"`)
	}
	for _, e := range extra {
		b.raw(" ", e)
	}
	b.raw(`>`)
	b.text(label)
	b.raw(`</button>`)
}

func writeCityEditor(b *htmlBuf, id string, p content.CityPage) {
	base := "/admin/api/cities/" + id
	b.raw(`<section class="city-editor"><details><summary><h2>`)
	b.text(p.Name)
	b.raw(`</h2></summary><h3>Sections</h3><ol class="layout">`)
	for i, s := range p.Layout {
		b.raw(`<li><code>`)
		b.text(s)
		b.raw(`</code>`)
		apiButton(b, "Up", "POST", base+"/layout/move", fmt.Sprintf(`{"index":%d,"direction":"up"}`, i))
		apiButton(b, "Down", "POST", base+"/layout/move", fmt.Sprintf(`{"index":%d,"direction":"down"}`, i))
		apiButton(b, "Hide", "POST", base+"/layout/toggle", fmt.Sprintf(`{"section":%s}`, jsString(s)))
		b.raw(`</li>`)
	}
	b.raw(`</ol><p class="hidden-sections">Hidden: `)
	for _, s := range content.Sections {
		if p.Visible(s) {
			continue
		}
		apiButton(b, "Show "+s, "POST", base+"/layout/toggle", fmt.Sprintf(`{"section":%s}`, jsString(s)))
	}
	b.raw(`</p><h3>Hero</h3><form data-api="`)
	b.text(base + "/hero")
	b.raw(`" data-method="PATCH">`)
	field(b, "title", "Title", p.Hero.Title, false)
	field(b, "subtitle", "Subtitle", p.Hero.Subtitle, true)
	field(b, "imageAlt", "Image alt text", p.Hero.ImageAlt, false)
	field(b, "pillText", "Pill text", p.Hero.PillText, false)
	b.raw(`<button type="submit">Save hero</button></form><h3>Testimonials</h3>`)
	apiButton(b, "Add testimonial", "POST", base+"/testimonials", "")
	for i, t := range p.Testimonials {
		url := fmt.Sprintf("%s/testimonials/%d", base, i)
		b.raw(`<form class="testimonial-editor" data-api="`)
		b.text(url)
		b.raw(`" data-method="PUT">`)
		field(b, "text", "Text", t.Text, true)
		field(b, "author", "Author", t.Author, false)
		field(b, "location", "Location", t.Location, false)
		b.raw(`<label>Rating <input type="number" name="rating" min="1" max="5" value="`, strconv.Itoa(t.Rating), `"/></label>`,
			`<button type="submit">Save</button>`)
		apiButton(b, "Delete", "DELETE", url, "", `data-ask="Delete this testimonial?"`)
		b.raw(`</form>`)
	}
	b.raw(`</details></section>`)
}

func field(b *htmlBuf, name, label, value string, multiline bool) {
	b.raw(`<label>`)
	b.text(label)
	if multiline {
		b.raw(` <textarea name="`, name, `" rows="4">`)
		b.text(value)
		b.raw(`</textarea></label>`)
		return
	}
	b.raw(` <input type="text" name="`, name, `" value="`)
	b.text(value)
	b.raw(`"/></label>`)
}

func writeGlobalEditor(b *htmlBuf, g content.GlobalConfig) {
	b.raw(`<section id="global"><h2>Global SEO &amp; Scripts</h2><form data-api="/admin/api/global" data-method="PATCH">`)
	field(b, "siteName", "Site name", g.SiteName, false)
	field(b, "metaDescription", "Meta description", g.MetaDescription, true)
	field(b, "keywords", "Keywords", g.Keywords, false)
	field(b, "googleTagId", "Google tag ID", g.GoogleTagID, false)
	field(b, "ogImageUrl", "Open Graph image URL", g.OGImageURL, false)
	field(b, "headScripts", "Head scripts", g.HeadScripts, true)
	field(b, "footerScripts", "Footer scripts", g.FooterScripts, true)
	field(b, "customJs", "Custom JavaScript", g.CustomJS, true)
	field(b, "robotsTxt", "robots.txt", g.RobotsTxt, true)
	field(b, "sitemapXml", "sitemap.xml", g.SitemapXML, true)
	b.raw(`<button type="submit">Save settings</button></form></section>`)
}

func writeBackups(b *htmlBuf, backups []content.BackupEntry) {
	b.raw(`<section id="backups"><h2>Backups</h2><form data-api="/admin/api/backups" data-method="POST">`,
		`<label>Label <input type="text" name="label" required placeholder="Before Launch"/></label>`,
		`<button type="submit">Create backup</button></form><table><thead><tr><th>Label</th><th>Created</th><th></th></tr></thead><tbody>`)
	for _, bk := range backups {
		b.raw(`<tr><td>`)
		b.text(bk.Label)
		b.raw(`</td><td>`)
		b.text(formatMillis(bk.Timestamp))
		b.raw(`</td><td>`)
		apiButton(b, "Restore", "POST", "/admin/api/backups/"+bk.ID+"/restore", "", "data-confirm")
		apiButton(b, "Delete", "DELETE", "/admin/api/backups/"+bk.ID, "", `data-ask="Delete this backup?"`)
		b.raw(`</td></tr>`)
	}
	b.raw(`</tbody></table><h3>Danger zone</h3>`)
	apiButton(b, "Reset to factory defaults", "POST", "/admin/api/reset", "", "data-confirm")
	b.raw(`</section>`)
}

func writeMedia(b *htmlBuf, images []weddingnanny.Image) {
	b.raw(`<section id="media"><h2>Media</h2><form data-api="/admin/api/images" data-method="POST" enctype="multipart/form-data">`,
		`<input type="file" name="image" accept="image/*" required/><button type="submit">Upload</button></form><ul class="images">`)
	for _, img := range images {
		b.raw(`<li><img src="`)
		b.text(img.URL)
		b.raw(`" alt="" loading="lazy" width="160"/><code>`)
		b.text(img.URL)
		b.raw(`</code> `)
		b.text(fmt.Sprintf("%dx%d", img.Width, img.Height))
		apiButton(b, "Delete", "DELETE", "/admin/api/images/"+img.Filename, "", `data-ask="Delete this image?"`)
		b.raw(`</li>`)
	}
	b.raw(`</ul></section>`)
}

func writeLogs(b *htmlBuf, logs []content.LogEntry) {
	b.raw(`<section id="logs"><h2>Change Log</h2><table><thead><tr><th>When</th><th>Change</th><th>By</th></tr></thead><tbody>`)
	for _, l := range logs {
		b.raw(`<tr><td>`)
		b.text(formatMillis(l.Timestamp))
		b.raw(`</td><td>`)
		b.text(l.Description)
		b.raw(`</td><td>`)
		b.text(l.Author)
		b.raw(`</td></tr>`)
	}
	b.raw(`</tbody></table></section>`)
}

func formatMillis(ms int64) string {
	return time.UnixMilli(ms).UTC().Format("2006-01-02 15:04 UTC")
}

const adminScript = `<script>
(function () {
  var csrf = document.querySelector('meta[name="csrf-token"]').content;
  function call(method, url, body) {
    return fetch(url, {
      method: method,
      credentials: 'same-origin',
      headers: {'Content-Type': 'application/json', 'X-CSRF-Token': csrf},
      body: body === undefined ? undefined : JSON.stringify(body)
    });
  }
  function done(res) {
    if (res.status === 204) { location.reload(); return; }
    return res.json().then(function (j) {
      if (!res.ok) { alert(j.error || 'Request failed'); return; }
      if (j.persisted === false) { alert(j.warning); }
      location.reload();
    });
  }
  function confirmed(method, url) {
    return call(method, url, {}).then(function (res) {
      if (res.status !== 409) { return done(res); }
      return res.json().then(function (p) {
        var q = p.action === 'reset'
          ? 'Reset all pages and settings to factory defaults? Backups are kept.'
          : 'Restore backup "' + p.label + '"? Current pages and settings will be replaced.';
        q += '\n\n' + p.added + ' lines added, ' + p.removed + ' lines removed.';
        if (confirm(q)) { return call(method, url, {confirm: true}).then(done); }
      });
    });
  }
  document.addEventListener('click', function (e) {
    var el = e.target.closest('button[data-api]');
    if (!el) { return; }
    e.preventDefault();
    var method = el.dataset.method || 'POST';
    if (el.dataset.confirm !== undefined) { confirmed(method, el.dataset.api); return; }
    if (el.dataset.ask && !confirm(el.dataset.ask)) { return; }
    call(method, el.dataset.api, el.dataset.body ? JSON.parse(el.dataset.body) : undefined).then(done);
  });
  document.addEventListener('submit', function (e) {
    var f = e.target;
    if (!f.dataset.api) { return; }
    e.preventDefault();
    if (f.enctype === 'multipart/form-data') {
      fetch(f.dataset.api, {method: 'POST', credentials: 'same-origin', headers: {'X-CSRF-Token': csrf}, body: new FormData(f)}).then(done);
      return;
    }
    var body = {};
    new FormData(f).forEach(function (v, k) {
      body[k] = f.elements[k].type === 'number' ? Number(v) : v;
    });
    call(f.dataset.method || 'POST', f.dataset.api, body).then(done);
  });
})();
</script>`
