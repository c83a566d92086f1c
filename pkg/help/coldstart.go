package help

const ColdstartYAML = `# url-keywords Quick Start

text_modes:
  visible: "All visible page text (default)"
  article: "Main article body only, falls back to visible text"

commands:
  single_url: |
    url-keywords https://example.com

  from_file: |
    url-keywords --file urls.txt --top 5 --output keywords.csv

  summary_table: |
    url-keywords --file urls.txt --print

  polite_batch: |
    url-keywords --file urls.txt --rate 0.5 --respect-robots

  debug_run: |
    url-keywords --verbose --log-file - --dump fetched_content.txt https://example.com

  related_questions: |
    export SERPAPI_API_KEY=...
    url-keywords questions --central "home gardening" --top 3 https://example.com/tomatoes

config_file: |
  # url-keywords --config keywords.yaml ...
  top_n: 5
  max_words: 5
  delay: 100ms
  rate: 0
  output: keywords.csv
  log_file: keyword_extraction.log
  fetch:
    timeout: 10s
    min_content_length: 100
    mode: visible
    respect_robots: false
  questions:
    endpoint: https://serpapi.com/search.json
    max_questions: 10

output:
  - "CSV columns: url, keyword_1..keyword_N, error (every field quoted)"
  - "One row per valid URL, in input order"
  - "Pages that fail or have under 100 characters of text: error = Insufficient content"
  - "Malformed URLs are dropped with a warning in the log"

exit_codes:
  "0": "CSV written"
  "1": "No URLs, no valid URLs, bad config or write failure"
`
