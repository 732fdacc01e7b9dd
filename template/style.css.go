package template

const StyleCSS = `
h1 {
  text-align: center;
  font-size: 1.4em;
  margin: 1.5em auto;
  font-weight: bold;
}

p {
  text-indent: 1.5em;
  margin-top: 0;
  margin-bottom: 1em;
  line-height: 1.6;
}

p.first-line {
  text-indent: 0;
}
`
