package shopify

// LineItemsPageSize tamaño de página de lineItems (máximo que acepta la Admin API).
const LineItemsPageSize = 100

// inventoryTransferQuery cabecera del traslado + una ventana de 100 líneas a partir de $after.
const inventoryTransferQuery = `query GetInventoryTransfer($id: ID!, $after: String) {
  inventoryTransfer(id: $id) {
    id
    name
    referenceName
    dateCreated
    status
    origin {
      name
      address {
        address1
        address2
        city
        zip
        province
        country
      }
      location {
        metafield(namespace: "location", key: "partita_iva") {
          value
        }
      }
    }
    destination {
      name
      address {
        address1
        address2
        city
        zip
        province
        country
      }
    }
    lineItems(first: 100, after: $after) {
      edges {
        cursor
        node {
          id
          totalQuantity
          inventoryItem {
            id
            sku
            variant {
              title
              product {
                title
              }
            }
          }
        }
      }
      pageInfo {
        hasNextPage
        endCursor
      }
    }
  }
}`

// inventoryTransfersQuery listado de traslados ordenado por ID.
const inventoryTransfersQuery = `query InventoryTransfers($first: Int!, $after: String) {
  inventoryTransfers(first: $first, after: $after, sortKey: ID) {
    edges {
      cursor
      node {
        id
        name
        referenceName
        status
        totalQuantity
        receivedQuantity
        origin { name }
        destination { name }
      }
    }
    pageInfo {
      hasNextPage
      endCursor
    }
  }
}`
