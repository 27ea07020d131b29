package api

import "net/http"

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(indexPageHTML))
}

const indexPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>QR Batch Generator</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
    background: #0a0a0a;
    color: #e0e0e0;
    display: flex;
    justify-content: center;
    align-items: center;
    min-height: 100vh;
  }
  .card {
    background: #1a1a1a;
    border: 1px solid #333;
    border-radius: 16px;
    padding: 48px;
    max-width: 420px;
    width: 100%;
  }
  h1 { font-size: 20px; font-weight: 600; margin-bottom: 8px; }
  .subtitle { color: #888; font-size: 14px; margin-bottom: 32px; }
  label { display: block; font-size: 13px; color: #aaa; margin-bottom: 6px; }
  input {
    width: 100%;
    background: #0f0f0f;
    border: 1px solid #333;
    border-radius: 8px;
    color: #e0e0e0;
    font-size: 15px;
    padding: 10px 12px;
    margin-bottom: 18px;
  }
  input:focus { outline: none; border-color: #4ade80; }
  button {
    width: 100%;
    background: #4ade80;
    border: none;
    border-radius: 8px;
    color: #0a0a0a;
    font-size: 15px;
    font-weight: 600;
    padding: 12px;
    cursor: pointer;
  }
  button:disabled { opacity: 0.5; cursor: default; }
  #status { font-size: 14px; color: #888; margin-top: 16px; min-height: 20px; }
  .error { color: #f87171 !important; }
  .ok { color: #4ade80 !important; }
</style>
</head>
<body>
<div class="card">
  <h1>QR Batch Generator</h1>
  <p class="subtitle">Generates a Word document with one QR code per number in the range.</p>
  <label for="start">Start number (inclusive)</label>
  <input id="start" type="number" value="0">
  <label for="end">End number (exclusive)</label>
  <input id="end" type="number" value="100">
  <button id="generate">Generate document</button>
  <div id="status"></div>
</div>
<script>
(function() {
  var btn = document.getElementById('generate');
  var statusEl = document.getElementById('status');

  btn.addEventListener('click', function() {
    var start = parseInt(document.getElementById('start').value, 10);
    var end = parseInt(document.getElementById('end').value, 10);
    if (isNaN(start) || isNaN(end)) {
      statusEl.className = 'error';
      statusEl.textContent = 'Please enter two integers.';
      return;
    }

    btn.disabled = true;
    statusEl.className = '';
    statusEl.textContent = 'Generating...';

    fetch('/generate', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({ start: start, end: end })
    })
      .then(function(resp) {
        if (!resp.ok) {
          return resp.json().then(function(data) {
            throw new Error(data.error || 'generation failed');
          });
        }
        return resp.blob();
      })
      .then(function(blob) {
        var url = URL.createObjectURL(blob);
        var a = document.createElement('a');
        a.href = url;
        a.download = 'QR_' + start + '_' + end + '.docx';
        document.body.appendChild(a);
        a.click();
        a.remove();
        URL.revokeObjectURL(url);
        statusEl.className = 'ok';
        statusEl.textContent = 'Document downloaded.';
      })
      .catch(function(err) {
        statusEl.className = 'error';
        statusEl.textContent = err.message;
      })
      .then(function() {
        btn.disabled = false;
      });
  });
})();
</script>
</body>
</html>`
