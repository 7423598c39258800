// Package plot turns frequency tables and yearly series into go-echarts
// charts and writes them as standalone HTML pages.
//
// Several charts rendered together are stacked in a single page, one below
// the other, so a question that produces a chart per genre or per value
// still yields one file to open in a browser.
package plot
